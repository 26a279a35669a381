package peer_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"cryptem"
	"cryptem/internal/crypto"
	"cryptem/internal/domain"
	"cryptem/internal/services/peer"
	"cryptem/internal/store"
)

func newPeerKey(c *qt.C) *cryptem.Crypt {
	cr, err := cryptem.NewWithParams([]byte("peer password"), crypto.FastKDFParams)
	c.Assert(err, qt.IsNil)
	return cr
}

func TestAddResolve(t *testing.T) {
	c := qt.New(t)
	svc := peer.New(store.NewPeerFileStore(t.TempDir()))
	bob := newPeerKey(c)

	p, err := svc.AddPeer("bob", "0x"+bob.PublicKey().String())
	c.Assert(err, qt.IsNil)
	c.Assert(p.Name, qt.Equals, domain.PeerName("bob"))

	e, err := svc.Resolve("bob")
	c.Assert(err, qt.IsNil)
	c.Assert(e.PublicKey().Equal(bob.PublicKey()), qt.IsTrue)

	ct, err := e.Encrypt([]byte("hi bob"))
	c.Assert(err, qt.IsNil)
	pt, err := bob.Decrypt(ct)
	c.Assert(err, qt.IsNil)
	c.Assert(string(pt), qt.Equals, "hi bob")
}

func TestResolve_HexKey(t *testing.T) {
	c := qt.New(t)
	svc := peer.New(store.NewPeerFileStore(t.TempDir()))
	carol := newPeerKey(c)

	e, err := svc.Resolve(carol.PublicKey().String())
	c.Assert(err, qt.IsNil)
	c.Assert(e.PublicKey().Equal(carol.PublicKey()), qt.IsTrue)

	_, err = svc.Resolve("nobody")
	c.Assert(err, qt.ErrorIs, domain.ErrPeerNotFound)
}

func TestAdd_Invalid(t *testing.T) {
	c := qt.New(t)
	svc := peer.New(store.NewPeerFileStore(t.TempDir()))
	good := newPeerKey(c).PublicKey().String()

	_, err := svc.AddPeer("", good)
	c.Assert(err, qt.ErrorIs, peer.ErrInvalidName)
	_, err = svc.AddPeer("bob smith", good)
	c.Assert(err, qt.ErrorIs, peer.ErrInvalidName)
	_, err = svc.AddPeer("bob", "02abcd")
	c.Assert(err, qt.ErrorIs, cryptem.ErrInvalidKey)
}

func TestRemoveAndList(t *testing.T) {
	c := qt.New(t)
	svc := peer.New(store.NewPeerFileStore(t.TempDir()))
	key := newPeerKey(c).PublicKey().String()

	for _, n := range []domain.PeerName{"zed", "amy"} {
		_, err := svc.AddPeer(n, key)
		c.Assert(err, qt.IsNil)
	}
	list, err := svc.ListPeers()
	c.Assert(err, qt.IsNil)
	c.Assert(list, qt.HasLen, 2)
	c.Assert(list[0].Name, qt.Equals, domain.PeerName("amy"))

	c.Assert(svc.RemovePeer("zed"), qt.IsNil)
	c.Assert(svc.RemovePeer("zed"), qt.ErrorIs, domain.ErrPeerNotFound)
}
