// Package todo is a small JSON todo service built on waypoint.
//
// POST /login issues a JWT. The /todos routes require it as a Bearer token:
//
//	GET    /todos      list all items
//	POST   /todos      create an item from the JSON body
//	GET    /todos/:id  fetch one item
//	DELETE /todos/:id  remove one item
//
// Items live in memory. Rate limit state lives in Redis when REDIS_URL is
// set and in memory otherwise.
package todo
