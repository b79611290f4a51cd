package main

import (
	_ "github.com/rclone/rclone/backend/local"
	_ "github.com/rclone/rclone/backend/webdav"

	"github.com/nuln/vstream/internal/cmd"

	_ "github.com/nuln/vstream/drivers"
)

func main() {
	cmd.Execute()
}
