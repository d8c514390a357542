package main

import "github.com/rmachado-dev/staffcast/internal/app"

func main() {
	err := app.NewStaffcastApp().Run()
	if err != nil {
		panic(err)
	}
}
