package doc

import "github.com/normanaranez/recipe-app-api/pkg/cli"

var ArchitectureCmd = &cli.Command{
	UsageLine: "architecture",
	Short:     "service architecture overview",
	Long: `
The service is a single binary. The user-server command runs the API
process; the remaining commands are management commands ran against the
same database folder while the server is stopped.

The API process listens on one TCP port and multiplexes three surfaces
over it: a gRPC service, a grpc-web wrapping of the same service for
browser clients, and a JSON REST surface. All three front the same user
service implementation.

The user service owns registration, token based authentication and
self-service profile management. State lives in an embedded key-value
store in the database folder: user records keyed by normalized email,
plus a token table mapping issued keys back to accounts. Passwords are
stored as bcrypt hashes and never leave the store.

Clients authenticate by obtaining a token with their credentials, then
passing 'Authorization: Token <key>' on subsequent requests. Tokens are
stable per account: re-authenticating yields the same key.
`,
}
