package pages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/iocinfo/internal/config"
)

func strptr(s string) *string { return &s }

func TestServicePage_LoadbalancerOnlyShowsIP(t *testing.T) {
	svc := config.QualifiedService{
		Name:   "gateway",
		Config: config.Service{Loadbalancer: strptr("10.0.0.5")},
		URL:    "http://10.0.0.5",
	}
	out, err := ServicePage{Service: svc, Now: testNow}.Render()
	require.NoError(t, err)

	require.Contains(t, out, "**Connection IP:** 10.0.0.5")
	require.NotContains(t, out, "## Service URL")
	require.NotContains(t, out, "](http://10.0.0.5)")
}

func TestServicePage_IngressShowsClickableURL(t *testing.T) {
	svc := config.QualifiedService{
		Name:   "archiver",
		Config: config.Service{EnableIngress: true, Desc: "Archives PVs."},
		URL:    "http://b1-archiver.ns",
	}
	out, err := ServicePage{Service: svc, Now: testNow}.Render()
	require.NoError(t, err)

	require.Contains(t, out, "## Service URL\n\n[http://b1-archiver.ns](http://b1-archiver.ns)")
	require.Contains(t, out, "## Description\n\nArchives PVs.\n")
	require.Contains(t, out, "type: \"docs\"")
}

func TestServicePage_LoadbalancerWithIngressShowsURL(t *testing.T) {
	svc := config.QualifiedService{
		Name:   "gateway",
		Config: config.Service{EnableIngress: true, Loadbalancer: strptr("10.0.0.5")},
		URL:    "http://10.0.0.5",
	}
	out, err := ServicePage{Service: svc, Now: testNow}.Render()
	require.NoError(t, err)
	require.Contains(t, out, "## Service URL")
	require.NotContains(t, out, "**Connection IP:**")
}

func TestServicePage_DefaultDescription(t *testing.T) {
	svc := config.QualifiedService{
		Name:   "svc",
		Config: config.Service{EnableIngress: true},
		URL:    "http://b1-svc.ns",
	}
	out, err := ServicePage{Service: svc, Now: testNow}.Render()
	require.NoError(t, err)
	require.Contains(t, out, "This is an EPICS service with ingress enabled.")
}
