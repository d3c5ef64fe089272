// Package service is the business logic layer between the transports and the
// game engine.
//
// GameService is the main interface: session lifecycle, jump execution
// (single and bulk, with optional board reset), legal-move queries, move
// history paging, and preset management. SessionManager and ConfigManager are
// the narrow interfaces it consumes, implemented by the session and config
// packages.
//
// Each session owns an independent engine instance, so concurrent games on
// different presets never interact.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, sessionInfo.ID, service.MoveRequest{From: 4, To: 1}, false)
//
// Failed jumps are not errors: they come back as MoveResult diagnostics with
// the reason the jump was blocked, and they are recorded in the session's
// move history.
package service
