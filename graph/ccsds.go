package graph

// CCSDS constructs the AR4JA and C2 LDPC codes from the CCSDS 131.0-B-5 TM
// Synchronization and Channel Coding Blue Book, used as fixed, well-known
// parity-check matrices for end-to-end BER harness scenarios.

// AR4JARate is the code rate of an AR4JA code.
type AR4JARate int

const (
	AR4JARate1_2 AR4JARate = iota
	AR4JARate2_3
	AR4JARate4_5
)

// AR4JAInfoSize is the information block size k of an AR4JA code.
type AR4JAInfoSize int

const (
	AR4JAK1024 AR4JAInfoSize = iota
	AR4JAK4096
	AR4JAK16384
)

// AR4JACode identifies one of the nine (rate, k) AR4JA code variants.
type AR4JACode struct {
	Rate AR4JARate
	K    AR4JAInfoSize
}

func (c AR4JACode) mLog2() int {
	table := map[AR4JARate]map[AR4JAInfoSize]int{
		AR4JARate1_2: {AR4JAK1024: 9, AR4JAK4096: 11, AR4JAK16384: 13},
		AR4JARate2_3: {AR4JAK1024: 8, AR4JAK4096: 10, AR4JAK16384: 12},
		AR4JARate4_5: {AR4JAK1024: 7, AR4JAK4096: 9, AR4JAK16384: 11},
	}
	return table[c.Rate][c.K]
}

// theta is Table 7-3/7-4's per-k row offset.
var ar4jaTheta = [26]int{
	3, 0, 1, 2, 2, 3, 0, 1, 0, 1, 2, 0, 2, 3, 0, 1, 2, 0, 1, 2, 0, 1, 2, 1, 2, 3,
}

// ar4jaPhi[j][k-1] gives the 7 values of Phi_k for j in {0,1,2,3} indexed by
// m_index = log2(M) - log2(128) in {0..6} (M in {128,...,8192}).
var ar4jaPhi = [4][26][7]int{
	{
		{1, 59, 16, 160, 108, 226, 1148},
		{22, 18, 103, 241, 126, 618, 2032},
		{0, 52, 105, 185, 238, 404, 249},
		{26, 23, 0, 251, 481, 32, 1807},
		{0, 11, 50, 209, 96, 912, 485},
		{10, 7, 29, 103, 28, 950, 1044},
		{5, 22, 115, 90, 59, 534, 717},
		{18, 25, 30, 184, 225, 63, 873},
		{3, 27, 92, 248, 323, 971, 364},
		{22, 30, 78, 12, 28, 304, 1926},
		{3, 43, 70, 111, 386, 409, 1241},
		{8, 14, 66, 66, 305, 708, 1769},
		{25, 46, 39, 173, 34, 719, 532},
		{25, 62, 84, 42, 510, 176, 768},
		{2, 44, 79, 157, 147, 743, 1138},
		{27, 12, 70, 174, 199, 759, 965},
		{7, 38, 29, 104, 347, 674, 141},
		{7, 47, 32, 144, 391, 958, 1527},
		{15, 1, 45, 43, 165, 984, 505},
		{10, 52, 113, 181, 414, 11, 1312},
		{4, 61, 86, 250, 97, 413, 1840},
		{19, 10, 1, 202, 158, 925, 709},
		{7, 55, 42, 68, 86, 687, 1427},
		{9, 7, 118, 177, 168, 752, 989},
		{26, 12, 33, 170, 506, 867, 1925},
		{17, 2, 126, 89, 489, 323, 270},
	},
	{
		{0, 0, 0, 0, 0, 0, 0},
		{27, 32, 53, 182, 375, 767, 1822},
		{30, 21, 74, 249, 436, 227, 203},
		{28, 36, 45, 65, 350, 247, 882},
		{7, 30, 47, 70, 260, 284, 1989},
		{1, 29, 0, 141, 84, 370, 957},
		{8, 44, 59, 237, 318, 482, 1705},
		{20, 29, 102, 77, 382, 273, 1083},
		{26, 39, 25, 55, 169, 886, 1072},
		{24, 14, 3, 12, 213, 634, 354},
		{4, 22, 88, 227, 67, 762, 1942},
		{12, 15, 65, 42, 313, 184, 446},
		{23, 48, 62, 52, 242, 696, 1456},
		{15, 55, 68, 243, 188, 413, 1940},
		{15, 39, 91, 179, 1, 854, 1660},
		{22, 11, 70, 250, 306, 544, 1661},
		{31, 1, 115, 247, 397, 864, 587},
		{3, 50, 31, 164, 80, 82, 708},
		{29, 40, 121, 17, 33, 1009, 1466},
		{21, 62, 45, 31, 7, 437, 433},
		{2, 27, 56, 149, 447, 36, 1345},
		{5, 38, 54, 105, 336, 562, 867},
		{11, 40, 108, 183, 424, 816, 1551},
		{26, 15, 14, 153, 134, 452, 2041},
		{9, 11, 30, 177, 152, 290, 1383},
		{17, 18, 116, 19, 492, 778, 1790},
	},
	{
		{0, 0, 0, 0, 0, 0, 0},
		{12, 46, 8, 35, 219, 254, 318},
		{30, 45, 119, 167, 16, 790, 494},
		{18, 27, 89, 214, 263, 642, 1467},
		{10, 48, 31, 84, 415, 248, 757},
		{16, 37, 122, 206, 403, 899, 1085},
		{13, 41, 1, 122, 184, 328, 1630},
		{9, 13, 69, 67, 279, 518, 64},
		{7, 9, 92, 147, 198, 477, 689},
		{15, 49, 47, 54, 307, 404, 1300},
		{16, 36, 11, 23, 432, 698, 148},
		{18, 10, 31, 93, 240, 160, 777},
		{4, 11, 19, 20, 454, 497, 1431},
		{23, 18, 66, 197, 294, 100, 659},
		{5, 54, 49, 46, 479, 518, 352},
		{3, 40, 81, 162, 289, 92, 1177},
		{29, 27, 96, 101, 373, 464, 836},
		{11, 35, 38, 76, 104, 592, 1572},
		{4, 25, 83, 78, 141, 198, 348},
		{8, 46, 42, 253, 270, 856, 1040},
		{2, 24, 58, 124, 439, 235, 779},
		{11, 33, 24, 143, 333, 134, 476},
		{11, 18, 25, 63, 399, 542, 191},
		{3, 37, 92, 41, 14, 545, 1393},
		{15, 35, 38, 214, 277, 777, 1752},
		{13, 21, 120, 70, 412, 483, 1627},
	},
	{
		{0, 0, 0, 0, 0, 0, 0},
		{13, 44, 35, 162, 312, 285, 1189},
		{19, 51, 97, 7, 503, 554, 458},
		{14, 12, 112, 31, 388, 809, 460},
		{15, 15, 64, 164, 48, 185, 1039},
		{20, 12, 93, 11, 7, 49, 1000},
		{17, 4, 99, 237, 185, 101, 1265},
		{4, 7, 94, 125, 328, 82, 1223},
		{4, 2, 103, 133, 254, 898, 874},
		{11, 30, 91, 99, 202, 627, 1292},
		{17, 53, 3, 105, 285, 154, 1491},
		{20, 23, 6, 17, 11, 65, 631},
		{8, 29, 39, 97, 168, 81, 464},
		{22, 37, 113, 91, 127, 823, 461},
		{19, 42, 92, 211, 8, 50, 844},
		{15, 48, 119, 128, 437, 413, 392},
		{5, 4, 74, 82, 475, 462, 922},
		{21, 10, 73, 115, 85, 175, 256},
		{17, 18, 116, 248, 419, 715, 1986},
		{9, 56, 31, 62, 459, 537, 19},
		{20, 9, 127, 26, 468, 722, 266},
		{18, 11, 98, 140, 209, 37, 471},
		{31, 23, 23, 121, 311, 488, 1166},
		{13, 8, 38, 12, 211, 179, 1300},
		{2, 7, 18, 41, 510, 430, 1033},
		{18, 24, 62, 249, 320, 264, 1606},
	},
}

func (c AR4JACode) phi(k, j int) int {
	mIndex := c.mLog2() - 7
	return ar4jaPhi[j][k-1][mIndex]
}

// pi implements Section 7.4.2.4 of the Blue Book: the permutation applied
// to bit i within circulant block k.
func (c AR4JACode) pi(k, i int) int {
	mLog2 := c.mLog2()
	m := 1 << mLog2
	j := 4 * i / m
	a := (ar4jaTheta[k-1] + j) & 0x3
	mDiv4 := 1 << (mLog2 - 2)
	b := (c.phi(k, j) + i) & (mDiv4 - 1)
	return (a << (mLog2 - 2)) + b
}

// H constructs the parity-check matrix for the AR4JA code.
func (c AR4JACode) H() *Graph {
	m := 1 << c.mLog2()
	extraBlocks := map[AR4JARate]int{AR4JARate1_2: 0, AR4JARate2_3: 2, AR4JARate4_5: 6}[c.Rate]
	extraCols := m * extraBlocks
	h := New(3*m, extraCols+5*m)

	for i := 0; i < m; i++ {
		h.Insert(i, extraCols+2*m+i)
		h.Insert(i, extraCols+4*m+i)
		h.Toggle(i, extraCols+4*m+c.pi(1, i))

		h.Insert(m+i, extraCols+i)
		h.Insert(m+i, extraCols+m+i)
		h.Insert(m+i, extraCols+3*m+i)
		h.Insert(m+i, extraCols+4*m+c.pi(2, i))
		h.Toggle(m+i, extraCols+4*m+c.pi(3, i))
		h.Toggle(m+i, extraCols+4*m+c.pi(4, i))

		h.Insert(2*m+i, extraCols+i)
		h.Insert(2*m+i, extraCols+m+c.pi(5, i))
		h.Toggle(2*m+i, extraCols+m+c.pi(6, i))
		h.Insert(2*m+i, extraCols+3*m+c.pi(7, i))
		h.Toggle(2*m+i, extraCols+3*m+c.pi(8, i))
		h.Insert(2*m+i, extraCols+4*m+i)
	}

	if c.Rate != AR4JARate1_2 {
		extraCols := 0
		if c.Rate == AR4JARate4_5 {
			extraCols = 4 * m
		}
		for i := 0; i < m; i++ {
			h.Insert(m+i, extraCols+c.pi(9, i))
			h.Toggle(m+i, extraCols+c.pi(10, i))
			h.Toggle(m+i, extraCols+c.pi(11, i))
			h.Insert(m+i, extraCols+m+i)

			h.Insert(2*m+i, extraCols+i)
			h.Insert(2*m+i, extraCols+m+c.pi(12, i))
			h.Toggle(2*m+i, extraCols+m+c.pi(13, i))
			h.Toggle(2*m+i, extraCols+m+c.pi(14, i))
		}
	}

	if c.Rate == AR4JARate4_5 {
		for i := 0; i < m; i++ {
			h.Insert(m+i, c.pi(21, i))
			h.Toggle(m+i, c.pi(22, i))
			h.Toggle(m+i, c.pi(23, i))
			h.Insert(m+i, m+i)
			h.Insert(m+i, 2*m+c.pi(15, i))
			h.Toggle(m+i, 2*m+c.pi(16, i))
			h.Toggle(m+i, 2*m+c.pi(17, i))
			h.Insert(m+i, 3*m+i)

			h.Insert(2*m+i, i)
			h.Insert(2*m+i, m+c.pi(24, i))
			h.Toggle(2*m+i, m+c.pi(25, i))
			h.Toggle(2*m+i, m+c.pi(26, i))
			h.Insert(2*m+i, 2*m+i)
			h.Insert(2*m+i, 3*m+c.pi(18, i))
			h.Toggle(2*m+i, 3*m+c.pi(19, i))
			h.Toggle(2*m+i, 3*m+c.pi(20, i))
		}
	}

	return h
}

const (
	c2BlockSize  = 511
	c2RowBlocks  = 2
	c2ColBlocks  = 16
	c2BlockWeight = 2
)

// c2Circulants is Table 7-1 of CCSDS 131.0-B-5: for each (row block, column
// block), the two circulant shifts whose sum (mod 511) of identity blocks
// forms that block of the C2 code's parity-check matrix.
var c2Circulants = [c2RowBlocks][c2ColBlocks][c2BlockWeight]int{
	{
		{0, 176}, {12, 239}, {0, 352}, {24, 431}, {0, 392}, {151, 409}, {0, 351}, {9, 359},
		{0, 307}, {53, 329}, {0, 207}, {18, 281}, {0, 399}, {202, 457}, {0, 247}, {36, 261},
	},
	{
		{99, 471}, {130, 473}, {198, 435}, {260, 478}, {215, 420}, {282, 481}, {48, 396}, {193, 445},
		{273, 430}, {302, 451}, {96, 379}, {191, 386}, {244, 467}, {364, 470}, {51, 382}, {192, 414},
	},
}

// C2H constructs the parity-check matrix of the basic (8176, 7156) CCSDS C2
// LDPC code. Expurgation, shortening and extension used to derive the
// (8160, 7136) code are left to the caller.
func C2H() *Graph {
	h := New(c2RowBlocks*c2BlockSize, c2ColBlocks*c2BlockSize)
	for row, blocks := range c2Circulants {
		for col, circs := range blocks {
			for _, circ := range circs {
				for j := 0; j < c2BlockSize; j++ {
					h.Insert(row*c2BlockSize+j, col*c2BlockSize+(j+circ)%c2BlockSize)
				}
			}
		}
	}
	return h
}
