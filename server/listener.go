package server

import (
	"net"
	"time"

	"github.com/bidon-io/bidon-proxy/metrics"
)

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}

	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

type monitorableListener struct {
	net.Listener
	me *metrics.Metrics
}

func (ln *monitorableListener) Accept() (net.Conn, error) {
	c, err := ln.Listener.Accept()
	if err != nil {
		ln.me.RecordConnectionAccept(false)
		return nil, err
	}

	ln.me.RecordConnectionAccept(true)
	return &monitorableConnection{c, ln.me}, nil
}

type monitorableConnection struct {
	net.Conn
	me *metrics.Metrics
}

func (c *monitorableConnection) Close() error {
	err := c.Conn.Close()
	c.me.RecordConnectionClose(err == nil)
	return err
}
