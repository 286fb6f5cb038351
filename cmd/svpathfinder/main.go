// svpathfinder is a standalone query tool that prints where Stardew Valley
// is installed. It exists so shell scripts and other tools can resolve the
// game path without pulling in the full installer.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"svinstall/internal/steam"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svpathfinder [options]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the resolved Stardew Valley installation path.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	gameFlag := pflag.BoolP("game", "g", false, "Print the bare installation path")
	modsFlag := pflag.BoolP("mods", "m", false, "Print the installation path with Mods appended")
	localizedFlag := pflag.BoolP("chinese", "c", false, "Print the localized sentence")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	gameDir, err := steam.DefaultFinder(os.Getenv("SV_GAME_PATH")).Find()
	if err != nil {
		if !errors.Is(err, steam.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(steam.NotFoundMessage)
		if !*gameFlag && !*modsFlag {
			waitForEnter()
		}
		return
	}

	// No flags behaves like -c, interactively.
	if !*gameFlag && !*modsFlag && !*localizedFlag {
		fmt.Println(steam.Render(gameDir, steam.FormatLocalized))
		waitForEnter()
		return
	}

	if *gameFlag {
		fmt.Println(steam.Render(gameDir, steam.FormatGame))
	}
	if *modsFlag {
		fmt.Println(steam.Render(gameDir, steam.FormatMods))
	}
	if *localizedFlag {
		fmt.Println(steam.Render(gameDir, steam.FormatLocalized))
		waitForEnter()
	}
}

func waitForEnter() {
	fmt.Println("\n按回车键退出...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
