package services

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the mutating operations; handlers map them to
// 403 and 404 respectively.
var (
	ErrNoPermission = errors.New("solo el creador puede modificar este registro")
	ErrNotFound     = errors.New("registro no encontrado")
)

// SameOwner compares the stored owner cedula with the caller-supplied one.
// Both sides are normalized to trimmed strings: the client has historically
// sent cedulas both as numbers and as strings.
func SameOwner(stored, claimed string) bool {
	return strings.TrimSpace(stored) == strings.TrimSpace(claimed)
}
