package main

import (
	"context"

	"starwars-api/commands"
	"starwars-api/logging"
)

func main() {
	if err := commands.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		logging.Logger().Fatalf("starwars-api: %v", err)
	}
}
