// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package supervisor runs the server's long-lived services under a suture v4
supervisor tree.

	RootSupervisor ("medalboard")
	├── EngineSupervisor ("engine-layer")
	│   └── WarmerService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing service is restarted with suture's backoff; the other layer keeps
running. Supervisor events are logged through sutureslog, which writes to
the zerolog pipeline via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddEngineService(services.NewWarmerService(engine, handler.MarkReady))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
