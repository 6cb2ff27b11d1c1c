// Package cmd holds the synctl command tree. NewRoot builds the root command
// with one subcommand per tree operation plus whoami and version; every
// subcommand opens a Session from the merged flag, environment, and config
// file settings and closes it when done.
package cmd
