// Package generator produces fake field values for record templates.
//
// A generate spec maps an output key to a [Kind] and its options:
//
//	{
//	  "title":  {"type": "sentence", "options": {"words": 5}},
//	  "author": {"type": "name", "options": {}},
//	  "tags":   {"type": "pick_many", "options": {"values": ["a", "b", "c"], "minimum": 1, "maximum": 3}}
//	}
//
// [Generator.Dictionary] runs every entry through the producer registered
// for its kind. An entry whose kind is not registered is passed through as
// a [Literal], which lets a spec carry static values next to generated ones.
//
// All randomness comes from the [gofakeit.Faker] owned by the [Generator];
// a fixed seed makes the output reproducible.
package generator
