package digest

import "testing"

func TestVideoDigestChangesWithFrame(t *testing.T) {
	a := NewVideo()
	frame := make([]uint16, 320*240)
	a.AddFrame(frame)
	first := a.String()

	frame[0] = 0x1234
	a.AddFrame(frame)
	second := a.String()

	if first == second {
		t.Fatal("digest did not change after framebuffer content changed")
	}
}

func TestVideoDigestDeterministic(t *testing.T) {
	frame := make([]uint16, 320*240)
	for i := range frame {
		frame[i] = uint16(i)
	}

	a := NewVideo()
	a.AddFrame(frame)

	b := NewVideo()
	b.AddFrame(frame)

	if a.String() != b.String() {
		t.Fatal("identical frames produced different digests")
	}
}

func TestAudioDigestChangesWithSample(t *testing.T) {
	a := NewAudio()
	for i := 0; i < audioBufferLength/2; i++ {
		a.AddSample(0, 0)
	}
	first := a.String()

	b := NewAudio()
	for i := 0; i < audioBufferLength/2; i++ {
		b.AddSample(1, 1)
	}
	second := b.String()

	if first == second {
		t.Fatal("digest did not change with different sample content")
	}
}
