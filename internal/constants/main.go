package constants

import "github.com/xdoubleu/essentia/v2/pkg/contexttools"

const UserContextKey contexttools.Key = "user"
