package doc

import "github.com/normanaranez/recipe-app-api/pkg/cli"

var DevWorkflowCmd = &cli.Command{
	UsageLine: "dev-workflow",
	Short:     "containerized development workflow",
	Long: `
Local development runs inside docker compose; the app service wraps this
binary. To run an arbitrary command in the app container:

    docker compose run --rm app sh -c "<command>"

For example, to create an administrative account:

    docker compose run --rm app sh -c "recipe-app-api create-superuser -email admin@example.com"

and to run the test suite:

    docker compose run --rm app sh -c "go test ./..."

Dependencies are pinned in go.mod and go.sum. To record the exact set a
build shipped with, freeze the binary's build information:

    docker compose run --rm app sh -c "recipe-app-api freeze -o requirements.txt"

Startup sequencing in compose uses the health check: dependent services
run 'recipe-app-api wait-for' before issuing real traffic.
`,
}
