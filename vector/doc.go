// Package vector decodes host values into float32 vectors:
//   - BLOB: little-endian IEEE 754 float32 sequence (EncodeEmbedding/DecodeEmbedding)
//   - TEXT: array literal such as "[0, 1]" or "{0,1}" (ParseText)
package vector
