package semilocal

// LCSWholeA returns the LCS length of the whole of a against the
// substring b[l:r], for 0 <= l <= r <= len(b).
func (k *Kernel) LCSWholeA(l, r int) (int, error) {
	if l < 0 || r < l || r > k.n {
		return 0, ErrOutOfRange
	}
	h, err := k.h.At(l+k.m, r)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return r - l - h, nil
}

// LCSWholeB returns the LCS length of the substring a[al:ar] against the
// whole of b, for 0 <= al <= ar <= len(a).
func (k *Kernel) LCSWholeB(al, ar int) (int, error) {
	if al < 0 || ar < al || ar > k.m {
		return 0, ErrOutOfRange
	}
	h, err := k.h.At(k.m-al, k.m+k.n-ar)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return k.n - h, nil
}

// LCSSuffixAPrefixB returns the LCS length of the suffix of a starting at
// al against the prefix of b ending at br, for 0 <= al <= len(a) and
// 0 <= br <= len(b).
func (k *Kernel) LCSSuffixAPrefixB(al, br int) (int, error) {
	if al < 0 || al > k.m || br < 0 || br > k.n {
		return 0, ErrOutOfRange
	}
	h, err := k.h.At(k.m-al, br)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return br - h, nil
}

// LCSPrefixASuffixB returns the LCS length of the prefix of a ending at
// ar against the suffix of b starting at bl, for 0 <= ar <= len(a) and
// 0 <= bl <= len(b).
func (k *Kernel) LCSPrefixASuffixB(ar, bl int) (int, error) {
	if ar < 0 || ar > k.m || bl < 0 || bl > k.n {
		return 0, ErrOutOfRange
	}
	h, err := k.h.At(bl+k.m, k.m+k.n-ar)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return k.n - bl - h, nil
}
