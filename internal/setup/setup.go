// Package setup generates Python packaging descriptors (setup.py) from
// templates carried in the services parent project.
package setup

import "io"

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
