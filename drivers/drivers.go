// Package drivers is a convenience package that registers all built-in
// stream drivers. Import it with a blank identifier to make all drivers
// available:
//
//	import _ "github.com/nuln/vstream/drivers"
package drivers

import (
	"github.com/nuln/vstream"
	_ "github.com/nuln/vstream/driver/dir"
	_ "github.com/nuln/vstream/driver/file"
	_ "github.com/nuln/vstream/driver/mem"
	_ "github.com/nuln/vstream/driver/rclone"
)

// Init ensures all built-in drivers are registered.
// This is called automatically by importing the package.
func Init() {}

// List returns the registered kinds in recognition order.
func List() []vstream.Kind {
	return vstream.Kinds()
}
