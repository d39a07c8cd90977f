/*
pdbscan walks a directory tree, reads every file that ends in .pdb or
.ent, compressed or not, and prints totals: files, failures, chains,
residues, atoms and how many residues are in helices and sheets.

Usage:
 pdbscan [options] directory

Flags:
  -r N
	Read N files at once (default 3).
  -d N
	Stop after N files. 0 means read everything.
  -l filename
	Append notes about dropped records to filename.
  -o filename
	Write totals to filename instead of standard output.

Files that cannot be read are listed on standard error. If standard
error is a terminal, a running count is written there as well.
*/
package main
