// Package frame defines the video frame model used by the videobridge
// rendering pipeline.
//
// Frames arrive from a media engine decode callback as borrowed Views whose
// plane memory is only valid for the duration of the callback. The pipeline
// copies each View into an owned Frame drawn from a fixed-depth Pool, so the
// hot path recycles a small constant number of buffers instead of allocating
// per frame.
//
// Two pixel formats are supported:
//
//	FormatI420: YUV 4:2:0 planar, one full-resolution Y plane and two
//	            quarter-resolution U and V planes.
//	FormatARGB: packed 32 bits per pixel, one interleaved plane.
//
// Every plane carries an explicit stride. Strides may exceed the tightly
// packed row width due to alignment padding and must be honored by all
// consumers.
package frame
