// Package dispatch implements the trigger-to-script mapping layer for ghadmin.
// It models a single invocation request (action, org, team, repo, user,
// permission, repository settings), validates it, renders it into an ordered
// argument list, and runs the external admin script exactly once with that
// argument vector.
//
// The package deliberately performs no GitHub API calls, retries, or token
// validation. Those concerns belong to the native admin layer in pkg/github.
package dispatch
