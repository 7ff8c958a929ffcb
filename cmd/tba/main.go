package main

import (
	"context"

	"bluealliance-client/cmd/tba/commands"
	"bluealliance-client/lib/telemetry"
)

func main() {
	ctx := context.Background()
	tel, _ := telemetry.SetupFromEnv(ctx, "tba-cli")
	defer tel.Shutdown(ctx)

	telemetry.InitSlog(false)
	commands.ExecuteContext(ctx)
}
