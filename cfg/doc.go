// Package cfg implements the statement model, line parser, and merge
// collection for game-style configuration files.
//
// # Grammar
//
// Each line holds at most one statement. The grammar, with ASCII space the
// only token separator:
//
//	line          := ws* (command (ws+ arg1 (ws+ arg2)?)?)? ws* comment?
//	command       := identifier
//	identifier    := (alpha | '_' | '@') (alnum | '_' | '@')*
//	arg1, arg2    := quoted-string
//	quoted-string := '"' chars-without-quote* '"'
//	comment       := "//" any*
//	ws            := ' '
//
// A bare identifier is a console command ([KindCommand]). An identifier with
// one quoted argument is a key/value setting ([KindSetting]). The identifier
// "bind" with two quoted arguments is a key-bind directive ([KindBind]); any
// other identifier with two arguments is malformed. A "//" inside a quoted
// string does not start a comment.
//
// # Merging
//
// [Set] is an identity-keyed collection of statements. Identity is the pair
// (kind, key); a setting's value and a bind's action are payload, excluded
// from identity. Inserting a statement whose identity already exists replaces
// the previous entry wholesale, so loading a target file and then a patch
// file yields patch-overrides-target semantics (and "last wins" within a
// single file).
//
// Output order is fixed: commands, then binds, then settings, each group
// sorted lexically by key.
package cfg
