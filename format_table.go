package ktx2

// Formats a KTX2 file may carry, numbered as in the Vulkan VkFormat enumeration.
const (
	FormatR4G4UnormPack8           Format = 1
	FormatR4G4B4A4UnormPack16      Format = 2
	FormatB4G4R4A4UnormPack16      Format = 3
	FormatR5G6B5UnormPack16        Format = 4
	FormatB5G6R5UnormPack16        Format = 5
	FormatR5G5B5A1UnormPack16      Format = 6
	FormatB5G5R5A1UnormPack16      Format = 7
	FormatA1R5G5B5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8SRGB                   Format = 15
	FormatR8G8Unorm                Format = 16
	FormatR8G8Snorm                Format = 17
	FormatR8G8Uint                 Format = 20
	FormatR8G8Sint                 Format = 21
	FormatR8G8SRGB                 Format = 22
	FormatR8G8B8Unorm              Format = 23
	FormatR8G8B8Snorm              Format = 24
	FormatR8G8B8Uint               Format = 27
	FormatR8G8B8Sint               Format = 28
	FormatR8G8B8SRGB               Format = 29
	FormatB8G8R8Unorm              Format = 30
	FormatB8G8R8Snorm              Format = 31
	FormatB8G8R8Uint               Format = 34
	FormatB8G8R8Sint               Format = 35
	FormatB8G8R8SRGB               Format = 36
	FormatR8G8B8A8Unorm            Format = 37
	FormatR8G8B8A8Snorm            Format = 38
	FormatR8G8B8A8Uint             Format = 41
	FormatR8G8B8A8Sint             Format = 42
	FormatR8G8B8A8SRGB             Format = 43
	FormatB8G8R8A8Unorm            Format = 44
	FormatB8G8R8A8Snorm            Format = 45
	FormatB8G8R8A8Uint             Format = 48
	FormatB8G8R8A8Sint             Format = 49
	FormatB8G8R8A8SRGB             Format = 50
	FormatA2R10G10B10UnormPack32   Format = 58
	FormatA2R10G10B10SnormPack32   Format = 59
	FormatA2R10G10B10UintPack32    Format = 62
	FormatA2R10G10B10SintPack32    Format = 63
	FormatA2B10G10R10UnormPack32   Format = 64
	FormatA2B10G10R10SnormPack32   Format = 65
	FormatA2B10G10R10UintPack32    Format = 68
	FormatA2B10G10R10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16G16Unorm              Format = 77
	FormatR16G16Snorm              Format = 78
	FormatR16G16Uint               Format = 81
	FormatR16G16Sint               Format = 82
	FormatR16G16Sfloat             Format = 83
	FormatR16G16B16Unorm           Format = 84
	FormatR16G16B16Snorm           Format = 85
	FormatR16G16B16Uint            Format = 88
	FormatR16G16B16Sint            Format = 89
	FormatR16G16B16Sfloat          Format = 90
	FormatR16G16B16A16Unorm        Format = 91
	FormatR16G16B16A16Snorm        Format = 92
	FormatR16G16B16A16Uint         Format = 95
	FormatR16G16B16A16Sint         Format = 96
	FormatR16G16B16A16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32G32Uint               Format = 101
	FormatR32G32Sint               Format = 102
	FormatR32G32Sfloat             Format = 103
	FormatR32G32B32Uint            Format = 104
	FormatR32G32B32Sint            Format = 105
	FormatR32G32B32Sfloat          Format = 106
	FormatR32G32B32A32Uint         Format = 107
	FormatR32G32B32A32Sint         Format = 108
	FormatR32G32B32A32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64G64Uint               Format = 113
	FormatR64G64Sint               Format = 114
	FormatR64G64Sfloat             Format = 115
	FormatR64G64B64Uint            Format = 116
	FormatR64G64B64Sint            Format = 117
	FormatR64G64B64Sfloat          Format = 118
	FormatR64G64B64A64Uint         Format = 119
	FormatR64G64B64A64Sint         Format = 120
	FormatR64G64B64A64Sfloat       Format = 121
	FormatB10G11R11UfloatPack32    Format = 122
	FormatE5B9G9R9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
	FormatBC1RGBUnormBlock         Format = 131
	FormatBC1RGBSRGBBlock          Format = 132
	FormatBC1RGBAUnormBlock        Format = 133
	FormatBC1RGBASRGBBlock         Format = 134
	FormatBC2UnormBlock            Format = 135
	FormatBC2SRGBBlock             Format = 136
	FormatBC3UnormBlock            Format = 137
	FormatBC3SRGBBlock             Format = 138
	FormatBC4UnormBlock            Format = 139
	FormatBC4SnormBlock            Format = 140
	FormatBC5UnormBlock            Format = 141
	FormatBC5SnormBlock            Format = 142
	FormatBC6HUfloatBlock          Format = 143
	FormatBC6HSfloatBlock          Format = 144
	FormatBC7UnormBlock            Format = 145
	FormatBC7SRGBBlock             Format = 146
	FormatETC2R8G8B8UnormBlock     Format = 147
	FormatETC2R8G8B8SRGBBlock      Format = 148
	FormatETC2R8G8B8A1UnormBlock   Format = 149
	FormatETC2R8G8B8A1SRGBBlock    Format = 150
	FormatETC2R8G8B8A8UnormBlock   Format = 151
	FormatETC2R8G8B8A8SRGBBlock    Format = 152
	FormatEACR11UnormBlock         Format = 153
	FormatEACR11SnormBlock         Format = 154
	FormatEACR11G11UnormBlock      Format = 155
	FormatEACR11G11SnormBlock      Format = 156
	FormatASTC4x4UnormBlock        Format = 157
	FormatASTC4x4SRGBBlock         Format = 158
	FormatASTC5x4UnormBlock        Format = 159
	FormatASTC5x4SRGBBlock         Format = 160
	FormatASTC5x5UnormBlock        Format = 161
	FormatASTC5x5SRGBBlock         Format = 162
	FormatASTC6x5UnormBlock        Format = 163
	FormatASTC6x5SRGBBlock         Format = 164
	FormatASTC6x6UnormBlock        Format = 165
	FormatASTC6x6SRGBBlock         Format = 166
	FormatASTC8x5UnormBlock        Format = 167
	FormatASTC8x5SRGBBlock         Format = 168
	FormatASTC8x6UnormBlock        Format = 169
	FormatASTC8x6SRGBBlock         Format = 170
	FormatASTC8x8UnormBlock        Format = 171
	FormatASTC8x8SRGBBlock         Format = 172
	FormatASTC10x5UnormBlock       Format = 173
	FormatASTC10x5SRGBBlock        Format = 174
	FormatASTC10x6UnormBlock       Format = 175
	FormatASTC10x6SRGBBlock        Format = 176
	FormatASTC10x8UnormBlock       Format = 177
	FormatASTC10x8SRGBBlock        Format = 178
	FormatASTC10x10UnormBlock      Format = 179
	FormatASTC10x10SRGBBlock       Format = 180
	FormatASTC12x10UnormBlock      Format = 181
	FormatASTC12x10SRGBBlock       Format = 182
	FormatASTC12x12UnormBlock      Format = 183
	FormatASTC12x12SRGBBlock       Format = 184
	FormatPVRTC1_2BPPUnormBlockIMG Format = 1000054000
	FormatPVRTC1_4BPPUnormBlockIMG Format = 1000054001
	FormatPVRTC2_2BPPUnormBlockIMG Format = 1000054002
	FormatPVRTC2_4BPPUnormBlockIMG Format = 1000054003
	FormatPVRTC1_2BPPSRGBBlockIMG  Format = 1000054004
	FormatPVRTC1_4BPPSRGBBlockIMG  Format = 1000054005
	FormatPVRTC2_2BPPSRGBBlockIMG  Format = 1000054006
	FormatPVRTC2_4BPPSRGBBlockIMG  Format = 1000054007
	FormatASTC4x4SfloatBlockEXT    Format = 1000066000
	FormatASTC5x4SfloatBlockEXT    Format = 1000066001
	FormatASTC5x5SfloatBlockEXT    Format = 1000066002
	FormatASTC6x5SfloatBlockEXT    Format = 1000066003
	FormatASTC6x6SfloatBlockEXT    Format = 1000066004
	FormatASTC8x5SfloatBlockEXT    Format = 1000066005
	FormatASTC8x6SfloatBlockEXT    Format = 1000066006
	FormatASTC8x8SfloatBlockEXT    Format = 1000066007
	FormatASTC10x5SfloatBlockEXT   Format = 1000066008
	FormatASTC10x6SfloatBlockEXT   Format = 1000066009
	FormatASTC10x8SfloatBlockEXT   Format = 1000066010
	FormatASTC10x10SfloatBlockEXT  Format = 1000066011
	FormatASTC12x10SfloatBlockEXT  Format = 1000066012
	FormatASTC12x12SfloatBlockEXT  Format = 1000066013
	FormatA4R4G4B4UnormPack16EXT   Format = 1000340000
	FormatA4B4G4R4UnormPack16EXT   Format = 1000340001
)

var formatTable = map[Format]formatInfo{
	FormatR4G4UnormPack8:           {name: "R4G4_UNORM_PACK8", typeSize: 1, dfd: packed(numUNORM, 1, field(chG, 0, 4), field(chR, 4, 4))},
	FormatR4G4B4A4UnormPack16:      {name: "R4G4B4A4_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chA, 0, 4), field(chB, 4, 4), field(chG, 8, 4), field(chR, 12, 4))},
	FormatB4G4R4A4UnormPack16:      {name: "B4G4R4A4_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chA, 0, 4), field(chR, 4, 4), field(chG, 8, 4), field(chB, 12, 4))},
	FormatR5G6B5UnormPack16:        {name: "R5G6B5_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chB, 0, 5), field(chG, 5, 6), field(chR, 11, 5))},
	FormatB5G6R5UnormPack16:        {name: "B5G6R5_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chR, 0, 5), field(chG, 5, 6), field(chB, 11, 5))},
	FormatR5G5B5A1UnormPack16:      {name: "R5G5B5A1_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chA, 0, 1), field(chB, 1, 5), field(chG, 6, 5), field(chR, 11, 5))},
	FormatB5G5R5A1UnormPack16:      {name: "B5G5R5A1_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chA, 0, 1), field(chR, 1, 5), field(chG, 6, 5), field(chB, 11, 5))},
	FormatA1R5G5B5UnormPack16:      {name: "A1R5G5B5_UNORM_PACK16", typeSize: 2, dfd: packed(numUNORM, 2, field(chB, 0, 5), field(chG, 5, 5), field(chR, 10, 5), field(chA, 15, 1))},
	FormatR8Unorm:                  {name: "R8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chR)},
	FormatR8Snorm:                  {name: "R8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chR)},
	FormatR8Uint:                   {name: "R8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chR)},
	FormatR8Sint:                   {name: "R8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chR)},
	FormatR8SRGB:                   {name: "R8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chR)},
	FormatR8G8Unorm:                {name: "R8G8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chR, chG)},
	FormatR8G8Snorm:                {name: "R8G8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chR, chG)},
	FormatR8G8Uint:                 {name: "R8G8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chR, chG)},
	FormatR8G8Sint:                 {name: "R8G8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chR, chG)},
	FormatR8G8SRGB:                 {name: "R8G8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chR, chG)},
	FormatR8G8B8Unorm:              {name: "R8G8B8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chR, chG, chB)},
	FormatR8G8B8Snorm:              {name: "R8G8B8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chR, chG, chB)},
	FormatR8G8B8Uint:               {name: "R8G8B8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chR, chG, chB)},
	FormatR8G8B8Sint:               {name: "R8G8B8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chR, chG, chB)},
	FormatR8G8B8SRGB:               {name: "R8G8B8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chR, chG, chB)},
	FormatB8G8R8Unorm:              {name: "B8G8R8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chB, chG, chR)},
	FormatB8G8R8Snorm:              {name: "B8G8R8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chB, chG, chR)},
	FormatB8G8R8Uint:               {name: "B8G8R8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chB, chG, chR)},
	FormatB8G8R8Sint:               {name: "B8G8R8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chB, chG, chR)},
	FormatB8G8R8SRGB:               {name: "B8G8R8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chB, chG, chR)},
	FormatR8G8B8A8Unorm:            {name: "R8G8B8A8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chR, chG, chB, chA)},
	FormatR8G8B8A8Snorm:            {name: "R8G8B8A8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chR, chG, chB, chA)},
	FormatR8G8B8A8Uint:             {name: "R8G8B8A8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chR, chG, chB, chA)},
	FormatR8G8B8A8Sint:             {name: "R8G8B8A8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chR, chG, chB, chA)},
	FormatR8G8B8A8SRGB:             {name: "R8G8B8A8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chR, chG, chB, chA)},
	FormatB8G8R8A8Unorm:            {name: "B8G8R8A8_UNORM", typeSize: 1, dfd: unpacked(numUNORM, 8, chB, chG, chR, chA)},
	FormatB8G8R8A8Snorm:            {name: "B8G8R8A8_SNORM", typeSize: 1, dfd: unpacked(numSNORM, 8, chB, chG, chR, chA)},
	FormatB8G8R8A8Uint:             {name: "B8G8R8A8_UINT", typeSize: 1, dfd: unpacked(numUINT, 8, chB, chG, chR, chA)},
	FormatB8G8R8A8Sint:             {name: "B8G8R8A8_SINT", typeSize: 1, dfd: unpacked(numSINT, 8, chB, chG, chR, chA)},
	FormatB8G8R8A8SRGB:             {name: "B8G8R8A8_SRGB", typeSize: 1, dfd: unpacked(numSRGB, 8, chB, chG, chR, chA)},
	FormatA2R10G10B10UnormPack32:   {name: "A2R10G10B10_UNORM_PACK32", typeSize: 4, dfd: packed(numUNORM, 4, field(chB, 0, 10), field(chG, 10, 10), field(chR, 20, 10), field(chA, 30, 2))},
	FormatA2R10G10B10SnormPack32:   {name: "A2R10G10B10_SNORM_PACK32", typeSize: 4, dfd: packed(numSNORM, 4, field(chB, 0, 10), field(chG, 10, 10), field(chR, 20, 10), field(chA, 30, 2))},
	FormatA2R10G10B10UintPack32:    {name: "A2R10G10B10_UINT_PACK32", typeSize: 4, dfd: packed(numUINT, 4, field(chB, 0, 10), field(chG, 10, 10), field(chR, 20, 10), field(chA, 30, 2))},
	FormatA2R10G10B10SintPack32:    {name: "A2R10G10B10_SINT_PACK32", typeSize: 4, dfd: packed(numSINT, 4, field(chB, 0, 10), field(chG, 10, 10), field(chR, 20, 10), field(chA, 30, 2))},
	FormatA2B10G10R10UnormPack32:   {name: "A2B10G10R10_UNORM_PACK32", typeSize: 4, dfd: packed(numUNORM, 4, field(chR, 0, 10), field(chG, 10, 10), field(chB, 20, 10), field(chA, 30, 2))},
	FormatA2B10G10R10SnormPack32:   {name: "A2B10G10R10_SNORM_PACK32", typeSize: 4, dfd: packed(numSNORM, 4, field(chR, 0, 10), field(chG, 10, 10), field(chB, 20, 10), field(chA, 30, 2))},
	FormatA2B10G10R10UintPack32:    {name: "A2B10G10R10_UINT_PACK32", typeSize: 4, dfd: packed(numUINT, 4, field(chR, 0, 10), field(chG, 10, 10), field(chB, 20, 10), field(chA, 30, 2))},
	FormatA2B10G10R10SintPack32:    {name: "A2B10G10R10_SINT_PACK32", typeSize: 4, dfd: packed(numSINT, 4, field(chR, 0, 10), field(chG, 10, 10), field(chB, 20, 10), field(chA, 30, 2))},
	FormatR16Unorm:                 {name: "R16_UNORM", typeSize: 2, dfd: unpacked(numUNORM, 16, chR)},
	FormatR16Snorm:                 {name: "R16_SNORM", typeSize: 2, dfd: unpacked(numSNORM, 16, chR)},
	FormatR16Uint:                  {name: "R16_UINT", typeSize: 2, dfd: unpacked(numUINT, 16, chR)},
	FormatR16Sint:                  {name: "R16_SINT", typeSize: 2, dfd: unpacked(numSINT, 16, chR)},
	FormatR16Sfloat:                {name: "R16_SFLOAT", typeSize: 2, dfd: unpacked(numSFLOAT, 16, chR)},
	FormatR16G16Unorm:              {name: "R16G16_UNORM", typeSize: 2, dfd: unpacked(numUNORM, 16, chR, chG)},
	FormatR16G16Snorm:              {name: "R16G16_SNORM", typeSize: 2, dfd: unpacked(numSNORM, 16, chR, chG)},
	FormatR16G16Uint:               {name: "R16G16_UINT", typeSize: 2, dfd: unpacked(numUINT, 16, chR, chG)},
	FormatR16G16Sint:               {name: "R16G16_SINT", typeSize: 2, dfd: unpacked(numSINT, 16, chR, chG)},
	FormatR16G16Sfloat:             {name: "R16G16_SFLOAT", typeSize: 2, dfd: unpacked(numSFLOAT, 16, chR, chG)},
	FormatR16G16B16Unorm:           {name: "R16G16B16_UNORM", typeSize: 2, dfd: unpacked(numUNORM, 16, chR, chG, chB)},
	FormatR16G16B16Snorm:           {name: "R16G16B16_SNORM", typeSize: 2, dfd: unpacked(numSNORM, 16, chR, chG, chB)},
	FormatR16G16B16Uint:            {name: "R16G16B16_UINT", typeSize: 2, dfd: unpacked(numUINT, 16, chR, chG, chB)},
	FormatR16G16B16Sint:            {name: "R16G16B16_SINT", typeSize: 2, dfd: unpacked(numSINT, 16, chR, chG, chB)},
	FormatR16G16B16Sfloat:          {name: "R16G16B16_SFLOAT", typeSize: 2, dfd: unpacked(numSFLOAT, 16, chR, chG, chB)},
	FormatR16G16B16A16Unorm:        {name: "R16G16B16A16_UNORM", typeSize: 2, dfd: unpacked(numUNORM, 16, chR, chG, chB, chA)},
	FormatR16G16B16A16Snorm:        {name: "R16G16B16A16_SNORM", typeSize: 2, dfd: unpacked(numSNORM, 16, chR, chG, chB, chA)},
	FormatR16G16B16A16Uint:         {name: "R16G16B16A16_UINT", typeSize: 2, dfd: unpacked(numUINT, 16, chR, chG, chB, chA)},
	FormatR16G16B16A16Sint:         {name: "R16G16B16A16_SINT", typeSize: 2, dfd: unpacked(numSINT, 16, chR, chG, chB, chA)},
	FormatR16G16B16A16Sfloat:       {name: "R16G16B16A16_SFLOAT", typeSize: 2, dfd: unpacked(numSFLOAT, 16, chR, chG, chB, chA)},
	FormatR32Uint:                  {name: "R32_UINT", typeSize: 4, dfd: unpacked(numUINT, 32, chR)},
	FormatR32Sint:                  {name: "R32_SINT", typeSize: 4, dfd: unpacked(numSINT, 32, chR)},
	FormatR32Sfloat:                {name: "R32_SFLOAT", typeSize: 4, dfd: unpacked(numSFLOAT, 32, chR)},
	FormatR32G32Uint:               {name: "R32G32_UINT", typeSize: 4, dfd: unpacked(numUINT, 32, chR, chG)},
	FormatR32G32Sint:               {name: "R32G32_SINT", typeSize: 4, dfd: unpacked(numSINT, 32, chR, chG)},
	FormatR32G32Sfloat:             {name: "R32G32_SFLOAT", typeSize: 4, dfd: unpacked(numSFLOAT, 32, chR, chG)},
	FormatR32G32B32Uint:            {name: "R32G32B32_UINT", typeSize: 4, dfd: unpacked(numUINT, 32, chR, chG, chB)},
	FormatR32G32B32Sint:            {name: "R32G32B32_SINT", typeSize: 4, dfd: unpacked(numSINT, 32, chR, chG, chB)},
	FormatR32G32B32Sfloat:          {name: "R32G32B32_SFLOAT", typeSize: 4, dfd: unpacked(numSFLOAT, 32, chR, chG, chB)},
	FormatR32G32B32A32Uint:         {name: "R32G32B32A32_UINT", typeSize: 4, dfd: unpacked(numUINT, 32, chR, chG, chB, chA)},
	FormatR32G32B32A32Sint:         {name: "R32G32B32A32_SINT", typeSize: 4, dfd: unpacked(numSINT, 32, chR, chG, chB, chA)},
	FormatR32G32B32A32Sfloat:       {name: "R32G32B32A32_SFLOAT", typeSize: 4, dfd: unpacked(numSFLOAT, 32, chR, chG, chB, chA)},
	FormatR64Uint:                  {name: "R64_UINT", typeSize: 8, dfd: unpacked(numUINT, 64, chR)},
	FormatR64Sint:                  {name: "R64_SINT", typeSize: 8, dfd: unpacked(numSINT, 64, chR)},
	FormatR64Sfloat:                {name: "R64_SFLOAT", typeSize: 8, dfd: unpacked(numSFLOAT, 64, chR)},
	FormatR64G64Uint:               {name: "R64G64_UINT", typeSize: 8, dfd: unpacked(numUINT, 64, chR, chG)},
	FormatR64G64Sint:               {name: "R64G64_SINT", typeSize: 8, dfd: unpacked(numSINT, 64, chR, chG)},
	FormatR64G64Sfloat:             {name: "R64G64_SFLOAT", typeSize: 8, dfd: unpacked(numSFLOAT, 64, chR, chG)},
	FormatR64G64B64Uint:            {name: "R64G64B64_UINT", typeSize: 8, dfd: unpacked(numUINT, 64, chR, chG, chB)},
	FormatR64G64B64Sint:            {name: "R64G64B64_SINT", typeSize: 8, dfd: unpacked(numSINT, 64, chR, chG, chB)},
	FormatR64G64B64Sfloat:          {name: "R64G64B64_SFLOAT", typeSize: 8, dfd: unpacked(numSFLOAT, 64, chR, chG, chB)},
	FormatR64G64B64A64Uint:         {name: "R64G64B64A64_UINT", typeSize: 8, dfd: unpacked(numUINT, 64, chR, chG, chB, chA)},
	FormatR64G64B64A64Sint:         {name: "R64G64B64A64_SINT", typeSize: 8, dfd: unpacked(numSINT, 64, chR, chG, chB, chA)},
	FormatR64G64B64A64Sfloat:       {name: "R64G64B64A64_SFLOAT", typeSize: 8, dfd: unpacked(numSFLOAT, 64, chR, chG, chB, chA)},
	FormatB10G11R11UfloatPack32:    {name: "B10G11R11_UFLOAT_PACK32", typeSize: 4, dfd: packed(numUFLOAT, 4, field(chR, 0, 11), field(chG, 11, 11), field(chB, 22, 10))},
	FormatE5B9G9R9UfloatPack32:     {name: "E5B9G9R9_UFLOAT_PACK32", typeSize: 4, dfd: sharedExponent()},
	FormatD16Unorm:                 {name: "D16_UNORM", typeSize: 2, dfd: depthStencil(2, typedField(numUNORM, chD, 0, 16))},
	FormatX8D24UnormPack32:         {name: "X8_D24_UNORM_PACK32", typeSize: 4, dfd: depthStencil(4, typedField(numUNORM, chD, 0, 24))},
	FormatD32Sfloat:                {name: "D32_SFLOAT", typeSize: 4, dfd: depthStencil(4, typedField(numSFLOAT, chD, 0, 32))},
	FormatS8Uint:                   {name: "S8_UINT", typeSize: 1, dfd: depthStencil(1, typedField(numUINT, chS, 0, 8))},
	FormatD16UnormS8Uint:           {name: "D16_UNORM_S8_UINT", typeSize: 2, dfd: depthStencil(4, typedField(numUNORM, chD, 0, 16), typedField(numUINT, chS, 16, 8))},
	FormatD24UnormS8Uint:           {name: "D24_UNORM_S8_UINT", typeSize: 4, dfd: depthStencil(4, typedField(numUNORM, chD, 0, 24), typedField(numUINT, chS, 24, 8))},
	FormatD32SfloatS8Uint:          {name: "D32_SFLOAT_S8_UINT", typeSize: 4, dfd: depthStencil(8, typedField(numSFLOAT, chD, 0, 32), typedField(numUINT, chS, 32, 8))},
	FormatBC1RGBUnormBlock:         {name: "BC1_RGB_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC1A, numUNORM, 4, 4, 8, field(ChannelBC1AColor, 0, 64))},
	FormatBC1RGBSRGBBlock:          {name: "BC1_RGB_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC1A, numSRGB, 4, 4, 8, field(ChannelBC1AColor, 0, 64))},
	FormatBC1RGBAUnormBlock:        {name: "BC1_RGBA_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC1A, numUNORM, 4, 4, 8, field(ChannelBC1AAlphaPresent, 0, 64))},
	FormatBC1RGBASRGBBlock:         {name: "BC1_RGBA_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC1A, numSRGB, 4, 4, 8, field(ChannelBC1AAlphaPresent, 0, 64))},
	FormatBC2UnormBlock:            {name: "BC2_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC2, numUNORM, 4, 4, 16, field(ChannelBC2Alpha, 0, 64), field(ChannelBC2Color, 64, 64))},
	FormatBC2SRGBBlock:             {name: "BC2_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC2, numSRGB, 4, 4, 16, field(ChannelBC2Alpha, 0, 64), field(ChannelBC2Color, 64, 64))},
	FormatBC3UnormBlock:            {name: "BC3_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC3, numUNORM, 4, 4, 16, field(ChannelBC3Alpha, 0, 64), field(ChannelBC3Color, 64, 64))},
	FormatBC3SRGBBlock:             {name: "BC3_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC3, numSRGB, 4, 4, 16, field(ChannelBC3Alpha, 0, 64), field(ChannelBC3Color, 64, 64))},
	FormatBC4UnormBlock:            {name: "BC4_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC4, numUNORM, 4, 4, 8, field(ChannelBC4Data, 0, 64))},
	FormatBC4SnormBlock:            {name: "BC4_SNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC4, numSNORM, 4, 4, 8, field(ChannelBC4Data, 0, 64))},
	FormatBC5UnormBlock:            {name: "BC5_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC5, numUNORM, 4, 4, 16, field(ChannelBC5Red, 0, 64), field(ChannelBC5Green, 64, 64))},
	FormatBC5SnormBlock:            {name: "BC5_SNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC5, numSNORM, 4, 4, 16, field(ChannelBC5Red, 0, 64), field(ChannelBC5Green, 64, 64))},
	FormatBC6HUfloatBlock:          {name: "BC6H_UFLOAT_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC6H, numUFLOAT, 4, 4, 16, field(ChannelBC6HColor, 0, 128))},
	FormatBC6HSfloatBlock:          {name: "BC6H_SFLOAT_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC6H, numSFLOAT, 4, 4, 16, field(ChannelBC6HColor, 0, 128))},
	FormatBC7UnormBlock:            {name: "BC7_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC7, numUNORM, 4, 4, 16, field(ChannelBC7Color, 0, 128))},
	FormatBC7SRGBBlock:             {name: "BC7_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelBC7, numSRGB, 4, 4, 16, field(ChannelBC7Color, 0, 128))},
	FormatETC2R8G8B8UnormBlock:     {name: "ETC2_R8G8B8_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numUNORM, 4, 4, 8, field(ChannelETC2Color, 0, 64))},
	FormatETC2R8G8B8SRGBBlock:      {name: "ETC2_R8G8B8_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numSRGB, 4, 4, 8, field(ChannelETC2Color, 0, 64))},
	FormatETC2R8G8B8A1UnormBlock:   {name: "ETC2_R8G8B8A1_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numUNORM, 4, 4, 8, field(ChannelETC2Color, 0, 64))},
	FormatETC2R8G8B8A1SRGBBlock:    {name: "ETC2_R8G8B8A1_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numSRGB, 4, 4, 8, field(ChannelETC2Color, 0, 64))},
	FormatETC2R8G8B8A8UnormBlock:   {name: "ETC2_R8G8B8A8_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numUNORM, 4, 4, 16, field(ChannelETC2Alpha, 0, 64), field(ChannelETC2Color, 64, 64))},
	FormatETC2R8G8B8A8SRGBBlock:    {name: "ETC2_R8G8B8A8_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numSRGB, 4, 4, 16, field(ChannelETC2Alpha, 0, 64), field(ChannelETC2Color, 64, 64))},
	FormatEACR11UnormBlock:         {name: "EAC_R11_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numUNORM, 4, 4, 8, field(ChannelETC2Red, 0, 64))},
	FormatEACR11SnormBlock:         {name: "EAC_R11_SNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numSNORM, 4, 4, 8, field(ChannelETC2Red, 0, 64))},
	FormatEACR11G11UnormBlock:      {name: "EAC_R11G11_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numUNORM, 4, 4, 16, field(ChannelETC2Red, 0, 64), field(ChannelETC2Green, 64, 64))},
	FormatEACR11G11SnormBlock:      {name: "EAC_R11G11_SNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelETC2, numSNORM, 4, 4, 16, field(ChannelETC2Red, 0, 64), field(ChannelETC2Green, 64, 64))},
	FormatASTC4x4UnormBlock:        {name: "ASTC_4x4_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 4, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC4x4SRGBBlock:         {name: "ASTC_4x4_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 4, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x4UnormBlock:        {name: "ASTC_5x4_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 5, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x4SRGBBlock:         {name: "ASTC_5x4_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 5, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x5UnormBlock:        {name: "ASTC_5x5_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 5, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x5SRGBBlock:         {name: "ASTC_5x5_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 5, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x5UnormBlock:        {name: "ASTC_6x5_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 6, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x5SRGBBlock:         {name: "ASTC_6x5_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 6, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x6UnormBlock:        {name: "ASTC_6x6_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 6, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x6SRGBBlock:         {name: "ASTC_6x6_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 6, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x5UnormBlock:        {name: "ASTC_8x5_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 8, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x5SRGBBlock:         {name: "ASTC_8x5_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 8, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x6UnormBlock:        {name: "ASTC_8x6_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 8, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x6SRGBBlock:         {name: "ASTC_8x6_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 8, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x8UnormBlock:        {name: "ASTC_8x8_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 8, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x8SRGBBlock:         {name: "ASTC_8x8_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 8, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x5UnormBlock:       {name: "ASTC_10x5_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 10, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x5SRGBBlock:        {name: "ASTC_10x5_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 10, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x6UnormBlock:       {name: "ASTC_10x6_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 10, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x6SRGBBlock:        {name: "ASTC_10x6_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 10, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x8UnormBlock:       {name: "ASTC_10x8_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 10, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x8SRGBBlock:        {name: "ASTC_10x8_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 10, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x10UnormBlock:      {name: "ASTC_10x10_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 10, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x10SRGBBlock:       {name: "ASTC_10x10_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 10, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x10UnormBlock:      {name: "ASTC_12x10_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 12, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x10SRGBBlock:       {name: "ASTC_12x10_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 12, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x12UnormBlock:      {name: "ASTC_12x12_UNORM_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numUNORM, 12, 12, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x12SRGBBlock:       {name: "ASTC_12x12_SRGB_BLOCK", typeSize: 1, dfd: compressed(ColorModelASTC, numSRGB, 12, 12, 16, field(ChannelASTCData, 0, 128))},
	FormatPVRTC1_2BPPUnormBlockIMG: {name: "PVRTC1_2BPP_UNORM_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC, numUNORM, 8, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC1_4BPPUnormBlockIMG: {name: "PVRTC1_4BPP_UNORM_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC, numUNORM, 4, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC2_2BPPUnormBlockIMG: {name: "PVRTC2_2BPP_UNORM_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC2, numUNORM, 8, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC2_4BPPUnormBlockIMG: {name: "PVRTC2_4BPP_UNORM_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC2, numUNORM, 4, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC1_2BPPSRGBBlockIMG:  {name: "PVRTC1_2BPP_SRGB_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC, numSRGB, 8, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC1_4BPPSRGBBlockIMG:  {name: "PVRTC1_4BPP_SRGB_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC, numSRGB, 4, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC2_2BPPSRGBBlockIMG:  {name: "PVRTC2_2BPP_SRGB_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC2, numSRGB, 8, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatPVRTC2_4BPPSRGBBlockIMG:  {name: "PVRTC2_4BPP_SRGB_BLOCK_IMG", typeSize: 1, dfd: compressed(ColorModelPVRTC2, numSRGB, 4, 4, 8, field(ChannelPVRTCColor, 0, 64))},
	FormatASTC4x4SfloatBlockEXT:    {name: "ASTC_4x4_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 4, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x4SfloatBlockEXT:    {name: "ASTC_5x4_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 5, 4, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC5x5SfloatBlockEXT:    {name: "ASTC_5x5_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 5, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x5SfloatBlockEXT:    {name: "ASTC_6x5_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 6, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC6x6SfloatBlockEXT:    {name: "ASTC_6x6_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 6, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x5SfloatBlockEXT:    {name: "ASTC_8x5_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 8, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x6SfloatBlockEXT:    {name: "ASTC_8x6_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 8, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC8x8SfloatBlockEXT:    {name: "ASTC_8x8_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 8, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x5SfloatBlockEXT:   {name: "ASTC_10x5_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 10, 5, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x6SfloatBlockEXT:   {name: "ASTC_10x6_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 10, 6, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x8SfloatBlockEXT:   {name: "ASTC_10x8_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 10, 8, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC10x10SfloatBlockEXT:  {name: "ASTC_10x10_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 10, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x10SfloatBlockEXT:  {name: "ASTC_12x10_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 12, 10, 16, field(ChannelASTCData, 0, 128))},
	FormatASTC12x12SfloatBlockEXT:  {name: "ASTC_12x12_SFLOAT_BLOCK_EXT", typeSize: 1, dfd: compressed(ColorModelASTC, numSFLOAT, 12, 12, 16, field(ChannelASTCData, 0, 128))},
	FormatA4R4G4B4UnormPack16EXT:   {name: "A4R4G4B4_UNORM_PACK16_EXT", typeSize: 2, dfd: packed(numUNORM, 2, field(chB, 0, 4), field(chG, 4, 4), field(chR, 8, 4), field(chA, 12, 4))},
	FormatA4B4G4R4UnormPack16EXT:   {name: "A4B4G4R4_UNORM_PACK16_EXT", typeSize: 2, dfd: packed(numUNORM, 2, field(chR, 0, 4), field(chG, 4, 4), field(chB, 8, 4), field(chA, 12, 4))},
}
