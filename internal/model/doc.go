// Package model defines the game and price records stored by gamesdb.
//
// # Records
//
//   - BGGGame: a game as scraped from BoardGameGeek, keyed by BGGID
//   - CSIPriceData: a CoolStuffInc listing, keyed by CSIID
//   - MMPriceData: a Miniature Market listing, keyed by MMID
//   - Game: the canonical game assembled from the sources, keyed by GameID
//   - GameReltn: links a canonical game to its per-site ids, keyed by ReltnID
//
// Every record is addressed by its integer domain key. The identifier the
// store assigns is never part of a model.
//
// # Serialization
//
// Models carry json and yaml tags so the command line tool can print and
// read them. The store representation is produced by the convert package,
// not by these tags.
//
// # Enumerations
//
// GameType, GameAvailability, ReviewState and GameCategory are string
// types with an IsValid method. Unknown values read from the store are kept
// as-is.
package model
