// Package templating turns JSON template files into request documents.
//
// Values for the placeholders come from a generate spec run through
// package generator and from literal key=value overrides given on the
// command line. Placeholders use the $name and ${name} forms, "$$" is a
// literal dollar sign and unknown names are left as they are.
package templating
