package main

import (
	app "NaviCode/App"
	"fmt"
)

func main() {
	app, err := app.NewApp()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		return
	}
	app.Run()
}
