/*
pdbsum reads a structure in the old fixed column PDB format and says
what it found: chains of each kind with residue and atom counts, the
sequence, a secondary structure string, chain breaks, disulfide bridges
with their SG-SG distance, the number of bonds from CONECT records, how
many atoms have no bonds and the centroid.

Usage:
 pdbsum [options] file.pdb
 pdbsum -w [-s N] 1abc

Flags:
  -l filename
	Append notes about records that were dropped (alternate
	locations, atoms without residue numbers, bad serials) to
	filename. "stdout" writes them to standard output.
  -o filename
	Write the summary to filename instead of standard output.
  -w	The argument is a four character code. Fetch it from the web.
  -s N
	With -w, use mirror number N. Numbers wrap around.

In the secondary structure string, H is helix, E is sheet and - is
loop, one letter per residue in sequence number order. Files may be
gzipped.
*/
package main
