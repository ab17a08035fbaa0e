// Package router keeps an ordered route table and resolves requests against
// it.
//
// Routes are registered with a method, a pattern and one or more handlers.
// Patterns are split on "/" and may contain ":name" placeholders that bind
// a single path segment:
//
//	r := router.New()
//	r.Get("/todos", listTodos)
//	r.Get("/todos/:id", auth, showTodo)
//	r.Delete("/todos/:id", auth, deleteTodo)
//
// Resolution filters routes by exact, case-sensitive method and returns the
// first registered route whose pattern matches the request path. There is no
// specificity ranking: a route registered earlier always wins.
//
//	rr, ok := r.Resolve(http.MethodGet, req.URL)
//	if ok {
//		fmt.Println(rr.Params["id"], rr.Query["sort"])
//	}
//
// Registration errors, such as a pattern without a leading slash or a
// duplicated placeholder name, panic. Use Compile to validate a pattern
// without registering it.
package router
