// SPDX-License-Identifier: Unlicense OR MIT

// Package gl holds the OpenGL 3.3 core enums and object names shared by
// the driver implementations.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALWAYS                        = 0x0207
	ARRAY_BUFFER                  = 0x8892
	BACK                          = 0x0405
	BGR                           = 0x80e0
	BGRA                          = 0x80e1
	BYTE                          = 0x1400
	CCW                           = 0x0901
	CLAMP_TO_EDGE                 = 0x812f
	COLOR_ATTACHMENT0             = 0x8ce0
	COLOR_BUFFER_BIT              = 0x4000
	COMPILE_STATUS                = 0x8b81
	CULL_FACE                     = 0x0b44
	CW                            = 0x0900
	DEPTH_ATTACHMENT              = 0x8d00
	DEPTH_BUFFER_BIT              = 0x100
	DEPTH_COMPONENT               = 0x1902
	DEPTH_COMPONENT24             = 0x81a6
	DEPTH_COMPONENT32F            = 0x8cac
	DEPTH_TEST                    = 0xb71
	DYNAMIC_DRAW                  = 0x88e8
	ELEMENT_ARRAY_BUFFER          = 0x8893
	EQUAL                         = 0x0202
	FALSE                         = 0
	FILL                          = 0x1b02
	FLOAT                         = 0x1406
	FRAGMENT_SHADER               = 0x8b30
	FRAMEBUFFER                   = 0x8d40
	FRAMEBUFFER_COMPLETE          = 0x8cd5
	FRAMEBUFFER_UNDEFINED         = 0x8219
	FRONT                         = 0x0404
	FRONT_AND_BACK                = 0x0408
	GEQUAL                        = 0x206
	GREATER                       = 0x204
	INFO_LOG_LENGTH               = 0x8b84
	INT                           = 0x1404
	INVALID_ENUM                  = 0x0500
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	INVALID_INDEX                 = ^uint(0)
	INVALID_OPERATION             = 0x0502
	INVALID_VALUE                 = 0x0501
	LEQUAL                        = 0x0203
	LESS                          = 0x0201
	LINE                          = 0x1b01
	LINE_STRIP                    = 0x0003
	LINEAR                        = 0x2601
	LINEAR_MIPMAP_LINEAR          = 0x2703
	LINEAR_MIPMAP_NEAREST         = 0x2701
	LINES                         = 0x0001
	LINK_STATUS                   = 0x8b82
	MIRRORED_REPEAT               = 0x8370
	NEAREST                       = 0x2600
	NEAREST_MIPMAP_LINEAR         = 0x2702
	NEAREST_MIPMAP_NEAREST        = 0x2700
	NEVER                         = 0x0200
	NO_ERROR                      = 0x0
	NONE                          = 0
	NOTEQUAL                      = 0x0205
	OUT_OF_MEMORY                 = 0x0505
	PACK_ALIGNMENT                = 0x0d05
	POINT                         = 0x1b00
	POINTS                        = 0x0000
	RED                           = 0x1903
	RENDERBUFFER                  = 0x8d41
	RENDERER                      = 0x1f01
	REPEAT                        = 0x2901
	RG                            = 0x8227
	RGB                           = 0x1907
	RGB32F                        = 0x8815
	RGB8                          = 0x8051
	RGBA                          = 0x1908
	RGBA32F                       = 0x8814
	RGBA8                         = 0x8058
	SHADING_LANGUAGE_VERSION      = 0x8b8c
	SHORT                         = 0x1402
	STATIC_DRAW                   = 0x88e4
	STREAM_DRAW                   = 0x88e0
	TEXTURE_2D                    = 0xde1
	TEXTURE_BUFFER                = 0x8c2a
	TEXTURE_MAG_FILTER            = 0x2800
	TEXTURE_MIN_FILTER            = 0x2801
	TEXTURE_WRAP_S                = 0x2802
	TEXTURE_WRAP_T                = 0x2803
	TEXTURE0                      = 0x84c0
	TRIANGLE_FAN                  = 0x6
	TRIANGLE_STRIP                = 0x5
	TRIANGLES                     = 0x4
	TRUE                          = 1
	UNIFORM_BUFFER                = 0x8a11
	UNPACK_ALIGNMENT              = 0xcf5
	UNSIGNED_BYTE                 = 0x1401
	UNSIGNED_INT                  = 0x1405
	UNSIGNED_SHORT                = 0x1403
	VERSION                       = 0x1f02
	VERTEX_SHADER                 = 0x8b31
)
