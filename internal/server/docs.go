// Package server provides the HTTP server for the helpmap /help protocol API.
//
// This file contains general API documentation annotations for Swag/OpenAPI generation.
// Individual endpoint annotations live in the handler files.
package server

// @title helpmap API
// @version 1.0
// @description Self-documenting API following the /help protocol.
// @description
// @description Every route area has a sibling /help route returning markdown
// @description documentation as plain text. POST /search scans all topics.
//
// @contact.name helpmap Project
// @contact.url https://github.com/agentstation/helpmap
//
// @license.name MIT
// @license.url https://github.com/agentstation/helpmap/blob/master/LICENSE
//
// @host localhost:8080
// @BasePath /
