/*
ssplot draws the helices and sheets of a structure as a PNG strip.

Usage:
 ssplot [options] file.pdb

Flags:
  -c N
	Each residue is N pixels wide (default 4).
  -l filename
	Append notes about dropped records to filename.
  -o filename
	Write the picture to filename (default ss.png).

There is one row per polymer chain, with residues in sequence number
order. Helices are red, sheets blue and loops grey. The first and last
residue of each helix or sheet are drawn darker, so two elements that
touch can be told apart.
*/
package main
