// Package schema declares the input shape of each calendar operation and
// validates untrusted tool arguments against it.
//
// A Schema is an ordered list of typed fields. Validation is total: it
// returns either the argument object or a *ValidationError that reports every
// missing field, type mismatch and enum violation separately. The same
// declaration renders the JSON Schema advertised to MCP clients, so the
// discovery listing and the runtime checks cannot drift apart.
//
// Example:
//
//	s := schema.New(
//	    schema.String("eventId", "ID of the event to retrieve", schema.Required()),
//	)
//	res := s.Validate(args)
//	if res.IsError() {
//	    return res.Error()
//	}
package schema
