package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_Professional(t *testing.T) {
	out, err := Transform("hey, I'm gonna need the report, can't wait!!", ToneProfessional)
	require.NoError(t, err)
	require.Equal(t, "Hello, I'm going to need the report, cannot wait.", out)
}

func TestTransform_ProfessionalStripsFiller(t *testing.T) {
	out, err := Transform("that was great lol see you tomorrow", ToneProfessional)
	require.NoError(t, err)
	require.NotContains(t, out, "lol")
}

func TestTransform_Friendly(t *testing.T) {
	out, err := Transform("Hello, I cannot make the meeting. Regards", ToneFriendly)
	require.NoError(t, err)
	require.Equal(t, "Hi! I can't make the meeting. cheers!", out)
}

func TestTransform_AssertiveDropsHedges(t *testing.T) {
	out, err := Transform("I think maybe we should just ship it", ToneAssertive)
	require.NoError(t, err)
	require.Equal(t, "We should ship it", out)
}

func TestTransform_Casual(t *testing.T) {
	out, err := Transform("Hello, I am going to review it. Best regards", ToneCasual)
	require.NoError(t, err)
	require.Equal(t, "hey I am gonna review it. later!", out)
}

func TestTransform_EmptyInput(t *testing.T) {
	out, err := Transform("   ", ToneProfessional)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestTransform_UnknownTone(t *testing.T) {
	_, err := Transform("hello", "sarcastic")
	require.ErrorIs(t, err, ErrUnknownTone)
}

func TestTransform_Deterministic(t *testing.T) {
	first, err := Transform("hey, I think we gotta fix this!", ToneProfessional)
	require.NoError(t, err)
	second, err := Transform("hey, I think we gotta fix this!", ToneProfessional)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestValid(t *testing.T) {
	for _, tone := range Tones {
		require.True(t, Valid(tone))
	}
	require.False(t, Valid("shouty"))
}
