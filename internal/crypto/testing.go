package crypto

// FastKDFParams is the cheapest cost Argon2id accepts. It exists so tests
// across the module can derive keys quickly; it offers no brute-force
// resistance and must not protect real passwords.
var FastKDFParams = KDFParams{Time: 1, MemoryKiB: 64, Threads: 1}
