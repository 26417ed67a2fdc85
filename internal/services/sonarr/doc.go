// Package sonarr queries a Sonarr server for a series' original language.
package sonarr
