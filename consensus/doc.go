// Package consensus builds pairwise-cost-matrix medoid selection and
// DTW barycenter averaging (DBA) over a collection of geom.Streams.
package consensus
