// mmkv is a command line tool that decrypts and inspects MMKV store files.
package main

import (
	"os"

	"github.com/arloliu/mmkv/cmd/mmkv/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
