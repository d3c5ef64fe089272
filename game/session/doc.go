// Package session manages the lifecycle of game sessions.
//
// Manager holds live sessions in memory, keyed by case-insensitive
// 4-character hex IDs generated from cryptographic randomness. All manager
// operations are safe for concurrent use.
//
// Two SessionPersistence backends ship with the package: FilePersistence
// writes one pretty-printed JSON file per session, SQLitePersistence stores
// sessions in a single database file. Both restore engines by replaying the
// saved state snapshot onto a freshly built board, so a stored session
// survives restarts with its full move history intact.
//
// Usage:
//
//	persistence, _ := session.NewFilePersistence("sessions", configMgr)
//	manager := session.NewManagerWithPersistence(persistence)
//	manager.LoadPersistedSessions()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Idle sessions are evicted by CleanupExpiredSessions; sessions whose stored
// copy is deleted out-of-band can be pruned from memory with
// DeleteFromMemory.
package session
