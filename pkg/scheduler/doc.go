// Package scheduler runs the daily background jobs: the evening recipe
// digest built from each chat's pantry, and the streak reminder for
// chats that have not logged a meal yet today.
package scheduler
