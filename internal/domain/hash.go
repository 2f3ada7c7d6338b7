package domain

const hashSalt = "ECOK"

const upperHexDigits = "0123456789ABCDEF"

// ComputeHash derives the 16 character hash the remote service expects on
// contact list calls from the account uin and the ptwebqq cookie.
func ComputeHash(id uint32, key string) string {
	var n [4]byte
	for i := 0; i < len(key); i++ {
		n[i%4] ^= key[i]
	}

	v := [4]byte{
		byte(id>>24) ^ hashSalt[0],
		byte(id>>16) ^ hashSalt[1],
		byte(id>>8) ^ hashSalt[2],
		byte(id) ^ hashSalt[3],
	}

	out := make([]byte, 0, 16)
	for i := 0; i < 8; i++ {
		b := v[i>>1]
		if i%2 == 0 {
			b = n[i>>1]
		}
		out = append(out, upperHexDigits[b>>4], upperHexDigits[b&0x0f])
	}

	return string(out)
}
