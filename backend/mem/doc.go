// Package mem implements synfs.Client against an in-memory entity store.
//
// # Usage
//
//	client := mem.NewClient()
//	project := client.NewProject("research")
//	session := synfs.New(client, project.ID)
//
// The store lives for the life of the Client and is shared by every Session
// rooted on it, which makes it the natural backend for tests and local
// experimentation. It enforces the same structural rules as the hosted
// repository: names are unique among siblings, files carry content, folders
// and projects carry children, and deleting a container removes its subtree.
//
// # Limitations
//
// File contents are held fully in memory, and nothing is persisted. There is
// no simulation of per-call latency or transient failures; use mocks.Client
// when a test needs to script error paths.
package mem
