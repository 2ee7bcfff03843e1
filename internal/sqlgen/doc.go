// Package sqlgen renders the category and product seed statements.
//
// Output is plain text in the MySQL dialect the shop database uses
// (SET NAMES, TRUNCATE TABLE, INSERT INTO ... VALUES). Rendering is a pure
// function of its inputs: the same catalog always yields the same bytes.
package sqlgen
