// Package addressformat weaves field placeholders into per-country address
// templates such as "{company}\n{first_name} {last_name}\n{address_1}" and
// builds the replacement table that fills them in.
package addressformat
