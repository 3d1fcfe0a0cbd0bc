package bitkit

import "go.llib.dev/frameless/pkg/errorkit"

const ErrByteLength errorkit.Error = "bitkit: unexpected byte length"
