package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotification_Render(t *testing.T) {
	tests := []struct {
		name     string
		n        Notification
		wantText string
		wantErr  bool
	}{
		{name: "signed in", n: Notification{Kind: NotifySignedIn, TemplateData: map[string]interface{}{"Name": "Ada"}}, wantText: "Ada signed in."},
		{name: "submitted", n: Notification{Kind: NotifySubmitted, TemplateData: map[string]interface{}{"Name": "Bob", "TaskTitle": "HW1"}}, wantText: "Bob submitted HW1"},
		{name: "evaluated", n: Notification{Kind: NotifyEvaluated, TemplateData: map[string]interface{}{"Name": "Bob", "Marks": 85.0}}, wantText: "Bob evaluated with score 85"},
		{name: "explicit template", n: Notification{Kind: "custom", TemplateName: "signed_in", TemplateData: map[string]interface{}{"Name": "Eve"}}, wantText: "Eve signed in."},
		{name: "body string wins", n: Notification{Kind: NotifySignedIn, BodyStr: "hello"}, wantText: "hello"},
		{name: "missing data", n: Notification{Kind: NotifySubmitted, TemplateData: map[string]interface{}{"Name": "Bob"}}, wantErr: true},
		{name: "unknown template", n: Notification{Kind: "unknown"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Render()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.Equal(t, tt.wantText, tt.n.Text)
				assert.True(t, tt.n.HasContent())
			}
		})
	}
}
