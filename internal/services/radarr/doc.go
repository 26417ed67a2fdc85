// Package radarr queries a Radarr server for a movie's original language.
package radarr
