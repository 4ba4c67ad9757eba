package swrr

// tableEntry is one precomputed filter design, keyed by order, band and the
// cutoff frequency normalized to Nyquist.
type tableEntry struct {
	order int
	band  Band
	wn    float64
	b     []float64
	a     []float64
}

// coefficientTable holds regression-stable Butterworth designs for the
// filter configurations commonly used in steering studies. Entries were
// produced with the same prototype-pole/bilinear design as the fallback
// path, then frozen as literals; lookups return these rows verbatim.
//
// Covered lowpass cutoffs: 0.6, 1.5, 2, 3 and 6 Hz at 60 Hz, and their
// equivalents at 120 Hz (equal Wn entries are shared). The handful of
// highpass rows supports drift-removal experiments.
//
// Read-only after initialization; safe for unsynchronized concurrent reads.
var coefficientTable = []tableEntry{
	// Order 2 lowpass, Wn = 0.02 (0.6 Hz at 60 Hz).
	{
		order: 2, band: Lowpass, wn: 0.02,
		b: []float64{0.0009446918438401619, 0.0018893836876803238, 0.0009446918438401619},
		a: []float64{1, -1.9111970674260732, 0.9149758348014339},
	},
	// Order 2 lowpass, Wn = 0.01 (0.6 Hz at 120 Hz).
	{
		order: 2, band: Lowpass, wn: 0.01,
		b: []float64{0.00024135904904196148, 0.00048271809808392296, 0.00024135904904196148},
		a: []float64{1, -1.9555782403150355, 0.9565436765112033},
	},
	// Order 2 lowpass, Wn = 1/15 (2 Hz at 60 Hz).
	{
		order: 2, band: Lowpass, wn: 0.06666666666666667,
		b: []float64{0.009525762376195457, 0.019051524752390914, 0.009525762376195457},
		a: []float64{1, -1.705552145544084, 0.7436551950488659},
	},
	// Order 2 lowpass, Wn = 1/30 (2 Hz at 120 Hz).
	{
		order: 2, band: Lowpass, wn: 0.03333333333333333,
		b: []float64{0.0025505351585363156, 0.005101070317072631, 0.0025505351585363156},
		a: []float64{1, -1.8521464853959357, 0.862348626030081},
	},
	// Order 2 lowpass, Wn = 0.1 (3 Hz at 60 Hz).
	{
		order: 2, band: Lowpass, wn: 0.1,
		b: []float64{0.020083365564211225, 0.04016673112842245, 0.020083365564211225},
		a: []float64{1, -1.5610180758007182, 0.6413515380575631},
	},
	// Order 2 lowpass, Wn = 0.05 (1.5 Hz at 60 Hz, 3 Hz at 120 Hz).
	{
		order: 2, band: Lowpass, wn: 0.05,
		b: []float64{0.005542717210280684, 0.011085434420561369, 0.005542717210280684},
		a: []float64{1, -1.7786317778245848, 0.8008026466657076},
	},
	// Order 2 lowpass, Wn = 0.2 (6 Hz at 60 Hz).
	{
		order: 2, band: Lowpass, wn: 0.2,
		b: []float64{0.06745527388907194, 0.13491054777814387, 0.06745527388907194},
		a: []float64{1, -1.142980502539901, 0.41280159809618866},
	},
	// Order 4 lowpass, Wn = 0.02 (0.6 Hz at 60 Hz).
	{
		order: 4, band: Lowpass, wn: 0.02,
		b: []float64{
			8.984861463792737e-07, 3.593944585517095e-06, 5.390916878275642e-06,
			3.593944585517095e-06, 8.984861463792737e-07,
		},
		a: []float64{1, -3.835825540647348, 5.520819136622228, -3.5335352194630145, 0.848555999266477},
	},
	// Order 4 lowpass, Wn = 0.1 (3 Hz at 60 Hz).
	{
		order: 4, band: Lowpass, wn: 0.1,
		b: []float64{
			0.000416599204406589, 0.001666396817626356, 0.002499595226439534,
			0.001666396817626356, 0.000416599204406589,
		},
		a: []float64{1, -3.180638548874719, 3.8611943489942133, -2.1121553551109686, 0.4382651422619798},
	},
	// Order 2 highpass, Wn = 0.01 (0.6 Hz at 120 Hz).
	{
		order: 2, band: Highpass, wn: 0.01,
		b: []float64{0.9780304792065597, -1.9560609584131194, 0.9780304792065597},
		a: []float64{1, -1.9555782403150355, 0.9565436765112033},
	},
	// Order 2 highpass, Wn = 0.1 (3 Hz at 60 Hz).
	{
		order: 2, band: Highpass, wn: 0.1,
		b: []float64{0.8005924034645704, -1.6011848069291408, 0.8005924034645704},
		a: []float64{1, -1.5610180758007182, 0.6413515380575631},
	},
}
