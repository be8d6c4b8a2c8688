/*
Package stream aligns arbitrarily large text files chunk by chunk.

The input is decoded as UTF-8 and cut into chunks of ChunkSize code points
(1024 by default). Each chunk runs through Ingestion, Stabilization,
Detection, Persistence and Realignment, and its aligned Vector is written on
its own line with 20 decimals. Memory use is bounded by the chunk size plus
one float per chunk for the summary.

Decoding follows text-mode file reading: undecodable bytes are dropped and
"\r\n" or a lone "\r" become "\n" before chunking.
*/
package stream
