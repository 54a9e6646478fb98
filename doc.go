/*
Package ktx2 reads KTX 2.0 GPU texture containers.

A KTX2 file holds a fixed 80-byte header, a level index with one record per
mip level, a Data Format Descriptor (DFD) describing the texel bit layout,
optional key/value metadata, optional supercompression global data and the
level payloads. NewReader validates every declared byte range up front and
then exposes zero-copy views: levels, descriptor blocks with their samples,
key/value entries and the global data. Supercompressed payloads (BasisLZ,
Zstandard, ZLIB) are returned as stored.

The package also carries the canonical Basic DFD and typeSize of every named
format, a writer used for tooling and round-trips, and BCn/RGBA8 level
decoding through github.com/woozymasta/bcn.
*/
package ktx2
