package calendar

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
)

// Client looks up engineer availability in Google Calendar. Each engineer's
// primary calendar is queried through the free/busy API: someone busy for
// the whole probe window is considered absent.
type Client struct {
	service *gcal.Service
}

var _ interfaces.AbsenceSource = (*Client)(nil)

// New builds a calendar client from a service account credentials file.
func New(ctx context.Context, credentialsFile string) (*Client, error) {
	if credentialsFile == "" {
		return nil, goerr.New("calendar credentials file is empty")
	}

	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarReadonlyScope),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "creating calendar service")
	}

	return &Client{service: service}, nil
}

// probeWindow is the span around "now" that must be fully busy for a person
// to count as absent. A one-hour meeting does not make someone unavailable
// for review, a full out-of-office day does.
const probeWindow = 8 * time.Hour

// AbsentEmails returns the subset of emails whose calendar is busy for the
// whole probe window starting at the given time.
func (x *Client) AbsentEmails(ctx context.Context, emails []string, at time.Time) (map[string]bool, error) {
	if len(emails) == 0 {
		return map[string]bool{}, nil
	}

	items := make([]*gcal.FreeBusyRequestItem, 0, len(emails))
	for _, email := range emails {
		items = append(items, &gcal.FreeBusyRequestItem{Id: email})
	}

	resp, err := x.service.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: at.Format(time.RFC3339),
		TimeMax: at.Add(probeWindow).Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, goerr.Wrap(err, "querying free/busy")
	}

	absent := map[string]bool{}
	for email, cal := range resp.Calendars {
		if len(cal.Errors) > 0 {
			continue
		}
		if coversWindow(cal.Busy, at, at.Add(probeWindow)) {
			absent[email] = true
		}
	}
	return absent, nil
}

func coversWindow(busy []*gcal.TimePeriod, from, to time.Time) bool {
	for _, period := range busy {
		start, err1 := time.Parse(time.RFC3339, period.Start)
		end, err2 := time.Parse(time.RFC3339, period.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if !start.After(from) && !end.Before(to) {
			return true
		}
	}
	return false
}
