// Command filip-multibit packs several independently transciphered
// message bits into a single GLWE ciphertext, one per coefficient
// position, instead of shipping one ciphertext per bit: each bit's
// ciphertext is rotated into its own coefficient slot with a negacyclic
// monomial multiplication and the results are summed, since the
// rotation and the sum both commute with GLWE decryption (spec.md §7,
// "packing multiple transciphered bits into one ciphertext").
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/encrypter"
	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/params"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/ring"
	"github.com/princess-elisabeth/FiLIP/symmetrickey"
)

func main() {
	name := flag.String("params", "FiLIP-1216", "parameter set name")
	nbBits := flag.Int("nb-bits", 16, "number of bits to pack into one ciphertext (must be <= the FHE ring degree N)")
	flag.Parse()

	p, err := params.Lookup(*name)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}
	fhe := p.FHEParams
	if *nbBits > fhe.Glwe.N {
		log.Fatalf("%s: nb-bits=%d exceeds ring degree N=%d", p.Name, *nbBits, fhe.Glwe.N)
	}

	fheSeed, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	fheGen, err := prng.NewFromSeed(fheSeed)
	if err != nil {
		log.Fatal(err)
	}
	sk := glwe.NewSecretKey(fheGen, fhe.Glwe)

	seed, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	keyGen, err := prng.NewFromSeed(seed)
	if err != nil {
		log.Fatal(err)
	}
	clearKey := encrypter.GenerateClearKey(keyGen, p.Kappa)

	noiseSeed, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	noiseGen, err := prng.NewFromSeed(noiseSeed)
	if err != nil {
		log.Fatal(err)
	}
	eval := ggsw.NewEvaluator(fhe.Glwe, fhe.BaseLog, fhe.Levels)
	encryptedKey := encrypter.GenerateEncryptedKey(clearKey, sk, fhe.BaseLog, fhe.Levels, fhe.Sigma, noiseGen, eval)

	filterSeed, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	filterGen, err := prng.NewFromSeed(filterSeed)
	if err != nil {
		log.Fatal(err)
	}
	f := p.Filter(filterGen)

	clearSK, err := symmetrickey.New(clearKey, p.N, seed)
	if err != nil {
		log.Fatal(err)
	}
	clearEnc := encrypter.New(clearSK, f, cipher.ClearBitFactory{})

	encSK, err := symmetrickey.New(encryptedKey, p.N, seed)
	if err != nil {
		log.Fatal(err)
	}
	bitFactory := &cipher.EncryptedBitFactory{SK: sk, Sigma: fhe.Sigma, Gen: noiseGen}
	fheEnc := encrypter.New(encSK, f, bitFactory)

	msgGen, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	mg, err := prng.NewFromSeed(msgGen)
	if err != nil {
		log.Fatal(err)
	}
	msg := make([]bool, *nbBits)
	for i := range msg {
		msg[i] = mg.Bit()
	}

	ctxt := clearEnc.Encrypt(msg)
	fheBits := fheEnc.Transcipher(ctxt, fhe.Glwe)

	packed := glwe.NewCiphertext(fhe.Glwe)
	for i, b := range fheBits {
		rotated := b.(*cipher.EncryptedBit).CT.MulMonomial(i)
		packed.AddInPlace(rotated)
	}

	dec := glwe.NewDecryptor(sk)
	phase := dec.Decrypt(packed)
	for i := range msg {
		if ring.DecodeBit(phase[i]) != msg[i] {
			log.Fatalf("%s: packed bit %d mismatch", p.Name, i)
		}
	}
	fmt.Printf("%s: packed %d transciphered bits into one ciphertext\n", p.Name, *nbBits)
}
