package email

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	body, err := RenderConfirmation(FeedbackConfirmation{
		StudentName: "Asha <R>",
		CourseName:  "Data Structures",
		FacultyName: "Dr. Rao",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Asha &lt;R&gt;,")
	assert.Contains(t, body, "<strong>Data Structures</strong>")
	assert.Contains(t, body, "handled by <strong>Dr. Rao</strong>")
}

func TestRenderConfirmationWithoutNames(t *testing.T) {
	body, err := RenderConfirmation(FeedbackConfirmation{CourseName: "Compilers"})
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Student,")
	assert.NotContains(t, body, "handled by")
}

func TestConfirmationSubject(t *testing.T) {
	assert.Equal(t, "Thanks for submitting feedback — Compilers", ConfirmationSubject("Compilers"))
}

func TestBuildMessageHeaders(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{FromName: "Course Feedback"}, zerolog.Nop())
	msg := string(n.buildMessage("admin@nec.edu.in", "s1@nec.edu.in", "Hi", "<p>x</p>"))

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.Equal(t, "<p>x</p>", body)

	lines := strings.Split(head, "\r\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "From: Course Feedback <admin@nec.edu.in>", lines[0])
	assert.Equal(t, "To: s1@nec.edu.in", lines[1])
	assert.Equal(t, "Subject: Hi", lines[2])
}

func TestSendSkipsWhenUnconfigured(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{}, zerolog.Nop())
	err := n.SendFeedbackConfirmation(context.Background(), FeedbackConfirmation{To: "s1@nec.edu.in", CourseName: "X"})
	assert.NoError(t, err)
}
