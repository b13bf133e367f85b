// Package utils provides small helpers shared across commands.
package utils
