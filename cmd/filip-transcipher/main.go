// Command filip-transcipher runs the full FiLIP pipeline: a client
// encrypts a random message entirely in the clear, then a server
// holding only an FHE encryption of the symmetric key recovers an FHE
// ciphertext of that same message from the public ciphertext bits
// alone, never learning the key or the plaintext (spec.md §4.4/§6,
// "transciphering").
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/encrypter"
	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/keystore"
	"github.com/princess-elisabeth/FiLIP/params"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/symmetrickey"
)

func main() {
	name := flag.String("params", "FiLIP-1216", "parameter set name")
	nbBits := flag.Int("nb-bits", 64, "number of message bits to transcipher")
	persist := flag.Bool("persist", false, "save/reuse the FHE secret key under KEY_DIRECTORY (the symmetric key is always freshly generated)")
	flag.Parse()

	p, err := params.Lookup(*name)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}
	fhe := p.FHEParams

	store := keystore.NewFromEnv()

	var sk *glwe.SecretKey
	var seed uint64
	var clearKey []cipher.Mux

	if *persist && store.HasFHESecretKey(p.Name) {
		sk, err = store.LoadFHESecretKey(p.Name, fhe.Glwe)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		fheGen, err := prng.NewRandomSeed()
		if err != nil {
			log.Fatal(err)
		}
		g, err := prng.NewFromSeed(fheGen)
		if err != nil {
			log.Fatal(err)
		}
		sk = glwe.NewSecretKey(g, fhe.Glwe)
		if *persist {
			if err := store.SaveFHESecretKey(p.Name, sk); err != nil {
				log.Fatal(err)
			}
		}
	}

	seed, err = prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	keyGen, err := prng.NewFromSeed(seed)
	if err != nil {
		log.Fatal(err)
	}
	clearKey = encrypter.GenerateClearKey(keyGen, p.Kappa)

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

	start := time.Now()
	fheBits := fheEnc.Transcipher(ctxt, fhe.Glwe)
	elapsed := time.Since(start)

	dec := glwe.NewDecryptor(sk)
	timings := make([]float64, len(fheBits))
	for i, b := range fheBits {
		t0 := time.Now()
		got := dec.DecryptBit(b.(*cipher.EncryptedBit).CT)
		timings[i] = float64(time.Since(t0).Microseconds())
		if got != msg[i] {
			log.Fatalf("%s: transcipher mismatch at bit %d", p.Name, i)
		}
	}

	mean, _ := stats.Mean(timings)
	stddev, _ := stats.StandardDeviation(timings)
	fmt.Printf("%s: %d bits transciphered in %s (avg decrypt %.2fus, stddev %.2fus)\n",
		p.Name, *nbBits, elapsed, mean, stddev)
}
