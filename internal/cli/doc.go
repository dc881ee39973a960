// Package cli implements the gamesdb command line tool.
//
//	gamesdb get bgg 155987
//	gamesdb put csi -f price.yaml
//	gamesdb delete game 101
//	gamesdb ids mm --format yaml
//	gamesdb max reltn
//	gamesdb count bgg --metrics
//	gamesdb check
//
// Kinds are bgg, csi, mm, game and reltn. Records are printed as JSON or
// YAML; put accepts either. Every command opens the configured store, runs
// and closes it again.
package cli
