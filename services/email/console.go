package emailsvc

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/shuleapp/console/core"
)

var (
	// SentMessages collects messages sent in test mode.
	SentMessages = make([]core.EmailMessage, 0)
	mu           sync.Mutex
)

// consoleService writes emails to stdout instead of delivering them. Used in
// debug and test modes.
type consoleService struct {
	from       mail.Address
	subjPrefix string
}

var _ core.EmailService = (*consoleService)(nil)

func NewConsoleService() core.EmailService {
	return &consoleService{
		from:       mail.Address{Name: core.Conf.AppName, Address: core.Conf.DefaultFromEmail},
		subjPrefix: "[" + core.Conf.AppName + "] ",
	}
}

func (svc consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		go svc.sendMessage(msg)
	}
}

func (svc consoleService) sendMessage(msg *core.EmailMessage) {
	if msg.HasRecipients() && msg.HasContent() {
		svc.send(*msg)
		mu.Lock()
		SentMessages = append(SentMessages, *msg)
		mu.Unlock()
	}
}

func (svc consoleService) send(msg core.EmailMessage) {
	body := new(strings.Builder)
	body.WriteString("From: " + svc.from.String() + "\n")
	tos := make([]string, 0, len(msg.To))
	for _, to := range msg.To {
		tos = append(tos, to.String())
	}
	body.WriteString("To: " + strings.Join(tos, ", ") + "\n")
	body.WriteString("Subject: " + svc.subjPrefix + msg.Subject + "\n")
	body.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\n\n")
	body.WriteString(msg.Body)

	fmt.Fprintln(os.Stdout, body.String())
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 79))
}

// ClearSentMessages resets the test outbox.
func ClearSentMessages() {
	mu.Lock()
	defer mu.Unlock()
	SentMessages = SentMessages[:0]
}
