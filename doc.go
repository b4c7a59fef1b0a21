// Package vigenere is the root of a small cryptanalysis toolkit for
// position-keyed Vigenère ciphertext: letters are shifted by a repeating key
// and, additionally, by the index of the key-length block they fall in.
//
// 🚀 What is in here?
//
//	• cipher/  : the letter transform, text-level encrypt/decrypt, key parsing
//	• corpus/  : input normalization and block partitioning (contiguous or interleaved)
//	• ioc/     : index-of-coincidence statistics over partitioned text
//	• keylen/  : key-length selection over a candidate range (default 1..25)
//	• keyspace/: odometer, lazy key iterator and a pluggable-scorer key sweep
//	• cmd/vigenere: command line front end (cobra, zap, YAML config)
//
// Pipeline:
//
//	ciphertext ─▶ corpus.Partition(k) ─▶ ioc.Score ─▶ keylen.Select ─▶ keyspace.Enumerate
//
// Quick start:
//
//	res, err := keylen.Select(ct)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sum, err := keyspace.Enumerate(res.Length, myScorer)
//
// Scoring candidate plaintexts is left to the caller: keyspace.Nop is the
// neutral default.
//
//	go install github.com/hn275/vigenere-cryptanalysis/cmd/vigenere@latest
package vigenere
